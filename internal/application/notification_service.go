package application

import (
	"context"

	"github.com/mahendrairawan/sociable/internal/domain/entity"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
)

// NotificationService lists and clears a user's notifications.
type NotificationService struct {
	Notifs repository.NotificationRepository
}

func NewNotificationService(notifs repository.NotificationRepository) *NotificationService {
	return &NotificationService{Notifs: notifs}
}

// List returns the user's notifications newest first and marks everything
// read, so the unread state is consumed by fetching.
func (s *NotificationService) List(ctx context.Context, userID string) ([]entity.Notification, error) {
	items, err := s.Notifs.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Notifs.MarkAllRead(ctx, userID); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear deletes all of the user's notifications.
func (s *NotificationService) Clear(ctx context.Context, userID string) error {
	return s.Notifs.DeleteAllForUser(ctx, userID)
}
