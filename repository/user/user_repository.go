package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/muhammadheryan/tamirse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.UserEntity) error
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, req *model.UserEntity) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (id, name, email, password_hash, type, is_active, phone, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`
	getUserBase     = `SELECT id, name, email, password_hash, type, is_active, phone, created_at, updated_at FROM users WHERE true`
	updateUserQuery = `UPDATE users SET name = $1, email = $2, phone = $3, updated_at = $4 WHERE id = $5`
)

const uniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, e.g. a second signup racing on users.email
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func prepareInsert(data *model.UserEntity) []any {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now
	return []any{data.ID, data.Name, data.Email, data.PasswordHash, data.Type, data.IsActive, data.Phone, now}
}

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	if _, err := s.conn.ExecContext(ctx, insertUserQuery, prepareInsert(data)...); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) error {
	_, err := tx.ExecContext(ctx, insertUserQuery, prepareInsert(data)...)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != "" {
		args = append(args, filter.ID)
		query += fmt.Sprintf(" AND id = $%d", len(args))
	}
	if filter.Email != "" {
		args = append(args, filter.Email)
		query += fmt.Sprintf(" AND email = $%d", len(args))
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, data *model.UserEntity) error {
	data.UpdatedAt = time.Now().UTC()
	res, err := s.conn.ExecContext(ctx, updateUserQuery, data.Name, data.Email, data.Phone, data.UpdatedAt, data.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
