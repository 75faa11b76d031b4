package entity

import "time"

// Post must carry non-empty text or a non-empty image reference.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"-"`
	Author    *User     `json:"author,omitempty"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"image,omitempty"`
	Likes     []string  `json:"likes"` // user ids that liked the post
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Comment is an append-only child of a Post; insertion order is preserved.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	User      *User     `json:"user,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
