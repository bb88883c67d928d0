package business

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

type BusinessRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.BusinessEntity) error
	GetByID(ctx context.Context, id string) (*model.BusinessEntity, error)
	GetByUserID(ctx context.Context, userID string) (*model.BusinessEntity, error)
	ListByUserID(ctx context.Context, userID string) ([]model.BusinessEntity, error)
	ListOnline(ctx context.Context) ([]model.BusinessWithOwner, error)
	GetWithOwner(ctx context.Context, id string) (*model.BusinessWithOwner, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.BusinessEntity, error)
	UpdateStatsTx(ctx context.Context, tx *sqlx.Tx, req *model.BusinessEntity) error
	UpdateProfile(ctx context.Context, req *model.BusinessEntity) error
	ListReviews(ctx context.Context, businessID string) ([]model.ReviewRow, error)
	GetDailyStats(ctx context.Context, businessID string, from, to time.Time) (*model.DailyStats, error)
}

func NewBusinessRepository(conn *sqlx.DB) BusinessRepository {
	return &SQL{conn: conn}
}

const (
	businessColumns = `b.id, b.user_id, b.business_name, b.business_address, b.business_phone, b.services, b.working_hours, b.description, b.estimated_delivery_time, b.total_earnings, b.completed_requests, b.active_requests, b.average_rating, b.is_online, b.created_at, b.updated_at`
	ownerColumns    = `u.id AS "owner.id", u.name AS "owner.name", u.email AS "owner.email", u.type AS "owner.type"`

	insertBusinessQuery = `INSERT INTO businesses (id, user_id, business_name, business_address, business_phone, services, working_hours, description, estimated_delivery_time, is_online, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`

	getBusinessByID        = `SELECT ` + businessColumns + ` FROM businesses b WHERE b.id = $1`
	getBusinessByIDForUpd  = getBusinessByID + ` FOR UPDATE`
	listBusinessesByUserID = `SELECT ` + businessColumns + ` FROM businesses b WHERE b.user_id = $1 ORDER BY b.created_at`

	listOnlineBusinesses = `SELECT ` + businessColumns + `, ` + ownerColumns + `
FROM businesses b
JOIN users u ON u.id = b.user_id
WHERE b.is_online = true
ORDER BY b.created_at`

	getBusinessWithOwner = `SELECT ` + businessColumns + `, ` + ownerColumns + `
FROM businesses b
JOIN users u ON u.id = b.user_id
WHERE b.id = $1`

	updateBusinessStats = `UPDATE businesses SET total_earnings = $1, completed_requests = $2, active_requests = $3, average_rating = $4, updated_at = $5 WHERE id = $6`

	updateBusinessProfile = `UPDATE businesses SET business_name = $1, business_address = $2, business_phone = $3, services = $4, working_hours = $5, description = $6, estimated_delivery_time = $7, updated_at = $8 WHERE id = $9`

	listBusinessReviews = `SELECT sr.id, u.name AS customer_name, sr.rating, sr.review, sr.completed_at, sr.updated_at
FROM service_requests sr
LEFT JOIN users u ON u.id = sr.customer_id
WHERE sr.business_id = $1 AND sr.status = 'completed' AND sr.rating IS NOT NULL
ORDER BY sr.completed_at DESC NULLS LAST`

	getDailyStats = `SELECT
	COALESCE(SUM(price) FILTER (WHERE status = 'completed' AND completed_at >= $2 AND completed_at < $3), 0) AS today_earnings,
	COUNT(*) FILTER (WHERE created_at >= $2 AND created_at < $3) AS today_requests,
	COUNT(*) FILTER (WHERE status = 'completed' AND completed_at >= $2 AND completed_at < $3) AS completed_today,
	COUNT(*) FILTER (WHERE status = 'rejected' AND updated_at >= $2 AND updated_at < $3) AS rejected_today,
	COUNT(*) FILTER (WHERE status = 'pending') AS pending_approval,
	COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress
FROM service_requests
WHERE business_id = $1`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.BusinessEntity) error {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now
	_, err := tx.ExecContext(ctx, insertBusinessQuery,
		data.ID, data.UserID, data.BusinessName, data.BusinessAddress, data.BusinessPhone,
		data.Services, data.WorkingHours, data.Description, data.EstimatedDeliveryTime, data.IsOnline, now)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.BusinessEntity, error) {
	var entity model.BusinessEntity
	if err := s.conn.GetContext(ctx, &entity, getBusinessByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetByUserID returns the first business owned by the user
func (s *SQL) GetByUserID(ctx context.Context, userID string) (*model.BusinessEntity, error) {
	items, err := s.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (s *SQL) ListByUserID(ctx context.Context, userID string) ([]model.BusinessEntity, error) {
	items := make([]model.BusinessEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listBusinessesByUserID, userID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListOnline(ctx context.Context) ([]model.BusinessWithOwner, error) {
	rows, err := s.conn.QueryxContext(ctx, listOnlineBusinesses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BusinessWithOwner, 0)
	for rows.Next() {
		var it model.BusinessWithOwner
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetWithOwner(ctx context.Context, id string) (*model.BusinessWithOwner, error) {
	var entity model.BusinessWithOwner
	if err := s.conn.QueryRowxContext(ctx, getBusinessWithOwner, id).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.BusinessEntity, error) {
	var entity model.BusinessEntity
	if err := tx.GetContext(ctx, &entity, getBusinessByIDForUpd, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateStatsTx(ctx context.Context, tx *sqlx.Tx, data *model.BusinessEntity) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := tx.ExecContext(ctx, updateBusinessStats,
		data.TotalEarnings, data.CompletedRequests, data.ActiveRequests, data.AverageRating, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) UpdateProfile(ctx context.Context, data *model.BusinessEntity) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := s.conn.ExecContext(ctx, updateBusinessProfile,
		data.BusinessName, data.BusinessAddress, data.BusinessPhone, data.Services, data.WorkingHours,
		data.Description, data.EstimatedDeliveryTime, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) ListReviews(ctx context.Context, businessID string) ([]model.ReviewRow, error) {
	items := make([]model.ReviewRow, 0)
	if err := s.conn.SelectContext(ctx, &items, listBusinessReviews, businessID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetDailyStats(ctx context.Context, businessID string, from, to time.Time) (*model.DailyStats, error) {
	var stats model.DailyStats
	if err := s.conn.GetContext(ctx, &stats, getDailyStats, businessID, from, to); err != nil {
		return nil, err
	}
	return &stats, nil
}
