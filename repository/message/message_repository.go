package message

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/muhammadheryan/tamirse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type MessageRepository interface {
	Create(ctx context.Context, req *model.RequestMessageEntity) (*model.RequestMessageEntity, error)
	ListByRequest(ctx context.Context, requestID string) ([]model.RequestMessageEntity, error)
}

func NewMessageRepository(conn *sqlx.DB) MessageRepository {
	return &SQL{conn: conn}
}

const (
	insertMessageQuery = `INSERT INTO request_messages (id, request_id, content, sender, attachments, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	listMessagesQuery  = `SELECT id, request_id, content, sender, attachments, created_at FROM request_messages WHERE request_id = $1 ORDER BY created_at ASC`
)

func (s *SQL) Create(ctx context.Context, data *model.RequestMessageEntity) (*model.RequestMessageEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	if data.Attachments == nil {
		data.Attachments = pq.StringArray{}
	}
	data.CreatedAt = time.Now().UTC()

	_, err := s.conn.ExecContext(ctx, insertMessageQuery,
		data.ID, data.RequestID, data.Content, data.Sender, data.Attachments, data.CreatedAt)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) ListByRequest(ctx context.Context, requestID string) ([]model.RequestMessageEntity, error) {
	items := make([]model.RequestMessageEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listMessagesQuery, requestID); err != nil {
		return nil, err
	}
	return items, nil
}
