package repository

import (
	"context"

	"github.com/mahendrairawan/sociable/internal/domain/entity"
)

// NotificationRepository stores the event records emitted by follow and like
// actions.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListForUser(ctx context.Context, toID string) ([]entity.Notification, error)
	MarkAllRead(ctx context.Context, toID string) error
	DeleteAllForUser(ctx context.Context, toID string) error
}
