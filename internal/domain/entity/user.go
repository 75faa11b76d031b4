package entity

import "time"

// User is the aggregate root for the account and social-graph domain.
// Password holds the bcrypt hash and is never serialized; everything else is
// the public profile.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"fullname"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Bio        string    `json:"bio"`
	Link       string    `json:"link"`
	ProfileImg string    `json:"profileImg"`
	CoverImg   string    `json:"coverImg"`
	Followers  []string  `json:"followers,omitempty"` // user ids following this user
	Following  []string  `json:"following,omitempty"` // user ids this user follows
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
