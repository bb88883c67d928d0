package notification

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/tamirse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type NotificationRepository interface {
	Create(ctx context.Context, req *model.NotificationEntity) (*model.NotificationEntity, error)
	ListByUser(ctx context.Context, userID string) ([]model.NotificationEntity, error)
	MarkRead(ctx context.Context, userID, id string) (*model.NotificationEntity, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

func NewNotificationRepository(conn *sqlx.DB) NotificationRepository {
	return &SQL{conn: conn}
}

const (
	insertNotificationQuery = `INSERT INTO notifications (id, user_id, type, message, is_read, action_url, created_at) VALUES ($1, $2, $3, $4, false, $5, $6)`
	listNotificationsQuery  = `SELECT id, user_id, type, message, is_read, action_url, created_at FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	markReadQuery           = `UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2 RETURNING id, user_id, type, message, is_read, action_url, created_at`
	markAllReadQuery        = `UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`
)

func (s *SQL) Create(ctx context.Context, data *model.NotificationEntity) (*model.NotificationEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	data.IsRead = false
	data.CreatedAt = time.Now().UTC()

	_, err := s.conn.ExecContext(ctx, insertNotificationQuery,
		data.ID, data.UserID, data.Type, data.Message, data.ActionURL, data.CreatedAt)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) ListByUser(ctx context.Context, userID string) ([]model.NotificationEntity, error) {
	items := make([]model.NotificationEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listNotificationsQuery, userID); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkRead returns nil when no notification with that id belongs to the user
func (s *SQL) MarkRead(ctx context.Context, userID, id string) (*model.NotificationEntity, error) {
	var entity model.NotificationEntity
	if err := s.conn.GetContext(ctx, &entity, markReadQuery, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res, err := s.conn.ExecContext(ctx, markAllReadQuery, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
