package entity

import "time"

// Notification kinds. Self-actions never produce notifications.
const (
	NotificationFollow = "follow"
	NotificationLike   = "like"
)

type Notification struct {
	ID        string    `json:"id"`
	FromID    string    `json:"-"`
	From      *User     `json:"from,omitempty"`
	ToID      string    `json:"to"`
	Kind      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
