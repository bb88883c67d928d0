package request_test

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
	requestrepo "github.com/muhammadheryan/tamirse/repository/request"
)

var requestColumns = []string{
	"id", "title", "description", "category", "urgency", "status", "price", "business_notes",
	"estimated_completion_date", "completed_at", "customer_id", "business_id", "vehicle_brand",
	"vehicle_model", "vehicle_year", "vehicle_mileage", "status_history", "rating", "review",
	"created_at", "updated_at",
}

var detailColumns = append(append([]string{}, requestColumns...),
	"customer_name", "customer_email", "customer_phone", "business_name", "business_phone", "business_address", "business_user_id")

const history = `[{"status":"pending","timestamp":"2024-06-01T10:00:00Z","updatedBy":"customer"}]`

func newRepo(t *testing.T) (requestrepo.RequestRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	conn := sqlx.NewDb(db, "postgres")
	return requestrepo.NewRequestRepository(conn), conn, mock
}

func requestRow(now time.Time) []driver.Value {
	return []driver.Value{
		"r1", "Toyota Corolla - Brakes", "desc", "Brakes", "medium", "pending", nil, nil,
		nil, nil, "c1", "b1", "Toyota", "Corolla", 2018, nil, []byte(history), nil, nil, now, now,
	}
}

func TestRequestRepository_List(t *testing.T) {
	now := time.Now().UTC()
	tests := []struct {
		name      string
		filter    *model.RequestFilter
		wantQuery string
		arg       string
	}{
		{name: "customer", filter: &model.RequestFilter{CustomerID: "c1"}, wantQuery: "AND sr.customer_id = $1 ORDER BY sr.created_at DESC", arg: "c1"},
		{name: "business", filter: &model.RequestFilter{BusinessID: "b1"}, wantQuery: "AND sr.business_id = $1 ORDER BY sr.created_at DESC", arg: "b1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepo(t)
			row := append(requestRow(now), "Ali", "ali@example.com", nil, "Quick Fix", "555", "Main st", "u-owner")
			mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery)).
				WithArgs(tt.arg).
				WillReturnRows(sqlmock.NewRows(detailColumns).AddRow(row...))

			got, err := repo.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != 1 || got[0].CustomerName != "Ali" || *got[0].BusinessUserID != "u-owner" {
				t.Fatalf("unexpected list %+v", got)
			}
			if len(got[0].StatusHistory) != 1 || got[0].StatusHistory[0].Status != constant.RequestStatusPending {
				t.Fatalf("status history not decoded: %+v", got[0].StatusHistory)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectations: %v", err)
			}
		})
	}
}

func TestRequestRepository_GetDetail_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("AND sr.id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(detailColumns))

	got, err := repo.GetDetail(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("GetDetail() = %+v, %v; want nil, nil", got, err)
	}
}

func TestRequestRepository_LockAndUpdate(t *testing.T) {
	now := time.Now().UTC()
	repo, conn, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM service_requests sr WHERE sr.id = $1 FOR UPDATE")).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(requestColumns).AddRow(requestRow(now)...))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE service_requests SET status = $1")).
		WithArgs("approved", 99.5, nil, nil, nil, sqlmock.AnyArg(), nil, nil, sqlmock.AnyArg(), "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	req, err := repo.GetForUpdateTx(context.Background(), tx, "r1")
	if err != nil {
		t.Fatalf("GetForUpdateTx() error = %v", err)
	}
	price := 99.5
	req.Price = &price
	req.Status = constant.RequestStatusApproved
	req.StatusHistory = append(req.StatusHistory, model.StatusHistoryEntry{Status: constant.RequestStatusApproved, UpdatedBy: constant.SenderBusiness})
	if err := repo.UpdateTx(context.Background(), tx, req); err != nil {
		t.Fatalf("UpdateTx() error = %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRequestRepository_ListRatingsTx(t *testing.T) {
	repo, conn, mock := newRepo(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT rating FROM service_requests WHERE business_id = $1")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(5.0).AddRow(4.0))
	mock.ExpectRollback()

	tx, err := conn.Beginx()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer tx.Rollback()

	got, err := repo.ListRatingsTx(context.Background(), tx, "b1")
	if err != nil {
		t.Fatalf("ListRatingsTx() error = %v", err)
	}
	if len(got) != 2 || got[0] != 5 || got[1] != 4 {
		t.Fatalf("ListRatingsTx() = %v", got)
	}
}

func TestRequestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO service_requests")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	businessID := "b1"
	got, err := repo.Create(context.Background(), &model.ServiceRequestEntity{
		Title: "t", Status: constant.RequestStatusPending, Urgency: constant.UrgencyLow, CustomerID: "c1", BusinessID: &businessID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID == "" {
		t.Fatalf("Create() should assign an id")
	}
}
