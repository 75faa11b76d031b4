package postgres

import (
	"context"

	"github.com/mahendrairawan/sociable/internal/domain/entity"
	"github.com/mahendrairawan/sociable/internal/domain/repository"
)

type NotificationRepository struct {
	db Querier
}

func NewNotificationRepository(db Querier) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO notifications (id, from_id, to_id, kind)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, n.ID, n.FromID, n.ToID, n.Kind)
	return row.Scan(&n.CreatedAt)
}

func (r *NotificationRepository) ListForUser(ctx context.Context, toID string) ([]entity.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT n.id, n.from_id, n.to_id, n.kind, n.read, n.created_at,
		       u.username, u.profile_img
		FROM notifications n
		JOIN users u ON u.id = n.from_id
		WHERE n.to_id = $1
		ORDER BY n.created_at DESC
	`, toID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifs := []entity.Notification{}
	for rows.Next() {
		var n entity.Notification
		from := &entity.User{}
		if err := rows.Scan(&n.ID, &n.FromID, &n.ToID, &n.Kind, &n.Read, &n.CreatedAt,
			&from.Username, &from.ProfileImg); err != nil {
			return nil, err
		}
		from.ID = n.FromID
		n.From = from
		notifs = append(notifs, n)
	}
	return notifs, rows.Err()
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, toID string) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE to_id = $1`, toID)
	return err
}

func (r *NotificationRepository) DeleteAllForUser(ctx context.Context, toID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE to_id = $1`, toID)
	return err
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)
