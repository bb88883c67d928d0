package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/tamirse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type RequestRepository interface {
	Create(ctx context.Context, req *model.ServiceRequestEntity) (*model.ServiceRequestEntity, error)
	List(ctx context.Context, filter *model.RequestFilter) ([]model.ServiceRequestDetail, error)
	GetDetail(ctx context.Context, id string) (*model.ServiceRequestDetail, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.ServiceRequestEntity, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req *model.ServiceRequestEntity) error
	ListRatingsTx(ctx context.Context, tx *sqlx.Tx, businessID string) ([]float64, error)
}

func NewRequestRepository(conn *sqlx.DB) RequestRepository {
	return &SQL{conn: conn}
}

const (
	requestColumns = `sr.id, sr.title, sr.description, sr.category, sr.urgency, sr.status, sr.price, sr.business_notes, sr.estimated_completion_date, sr.completed_at, sr.customer_id, sr.business_id, sr.vehicle_brand, sr.vehicle_model, sr.vehicle_year, sr.vehicle_mileage, sr.status_history, sr.rating, sr.review, sr.created_at, sr.updated_at`

	insertRequestQuery = `INSERT INTO service_requests (id, title, description, category, urgency, status, customer_id, business_id, vehicle_brand, vehicle_model, vehicle_year, vehicle_mileage, status_history, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`

	requestDetailBase = `SELECT ` + requestColumns + `,
	cu.name AS customer_name, cu.email AS customer_email, cu.phone AS customer_phone,
	b.business_name AS business_name, b.business_phone AS business_phone, b.business_address AS business_address, b.user_id AS business_user_id
FROM service_requests sr
JOIN users cu ON cu.id = sr.customer_id
LEFT JOIN businesses b ON b.id = sr.business_id
WHERE true`

	getRequestForUpdate = `SELECT ` + requestColumns + ` FROM service_requests sr WHERE sr.id = $1 FOR UPDATE`

	updateRequestQuery = `UPDATE service_requests SET status = $1, price = $2, business_notes = $3, estimated_completion_date = $4, completed_at = $5, status_history = $6, rating = $7, review = $8, updated_at = $9 WHERE id = $10`

	listRatingsQuery = `SELECT rating FROM service_requests WHERE business_id = $1 AND status = 'completed' AND rating IS NOT NULL`
)

func (s *SQL) Create(ctx context.Context, data *model.ServiceRequestEntity) (*model.ServiceRequestEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now

	_, err := s.conn.ExecContext(ctx, insertRequestQuery,
		data.ID, data.Title, data.Description, data.Category, data.Urgency, data.Status,
		data.CustomerID, data.BusinessID, data.VehicleBrand, data.VehicleModel, data.VehicleYear,
		data.VehicleMileage, data.StatusHistory, now)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter *model.RequestFilter) ([]model.ServiceRequestDetail, error) {
	query := requestDetailBase
	args := make([]any, 0, 2)

	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		query += fmt.Sprintf(" AND sr.customer_id = $%d", len(args))
	}
	if filter.BusinessID != "" {
		args = append(args, filter.BusinessID)
		query += fmt.Sprintf(" AND sr.business_id = $%d", len(args))
	}
	query += " ORDER BY sr.created_at DESC"

	items := make([]model.ServiceRequestDetail, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetDetail(ctx context.Context, id string) (*model.ServiceRequestDetail, error) {
	var entity model.ServiceRequestDetail
	if err := s.conn.GetContext(ctx, &entity, requestDetailBase+" AND sr.id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.ServiceRequestEntity, error) {
	var entity model.ServiceRequestEntity
	if err := tx.GetContext(ctx, &entity, getRequestForUpdate, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.ServiceRequestEntity) error {
	data.UpdatedAt = time.Now().UTC()
	_, err := tx.ExecContext(ctx, updateRequestQuery,
		data.Status, data.Price, data.BusinessNotes, data.EstimatedCompletionDate, data.CompletedAt,
		data.StatusHistory, data.Rating, data.Review, data.UpdatedAt, data.ID)
	return err
}

// ListRatingsTx returns every rating of the business's completed requests
func (s *SQL) ListRatingsTx(ctx context.Context, tx *sqlx.Tx, businessID string) ([]float64, error) {
	ratings := make([]float64, 0)
	if err := tx.SelectContext(ctx, &ratings, listRatingsQuery, businessID); err != nil {
		return nil, err
	}
	return ratings, nil
}
