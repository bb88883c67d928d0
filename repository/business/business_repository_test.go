package business_test

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
	businessrepo "github.com/muhammadheryan/tamirse/repository/business"
)

var businessColumns = []string{
	"id", "user_id", "business_name", "business_address", "business_phone", "services", "working_hours",
	"description", "estimated_delivery_time", "total_earnings", "completed_requests", "active_requests",
	"average_rating", "is_online", "created_at", "updated_at",
}

func newRepo(t *testing.T) (businessrepo.BusinessRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	conn := sqlx.NewDb(db, "postgres")
	return businessrepo.NewBusinessRepository(conn), conn, mock
}

func businessRow(now time.Time) []driver.Value {
	return []driver.Value{"b1", "u1", "Quick Fix", "Main st", "555", "Oil, Brakes", "9-17", nil, nil, 1200.5, 3, 1, 4.5, true, now, now}
}

func TestBusinessRepository_GetWithOwner(t *testing.T) {
	now := time.Now().UTC()
	repo, _, mock := newRepo(t)

	cols := append(append([]string{}, businessColumns...), "owner.id", "owner.name", "owner.email", "owner.type")
	row := append(businessRow(now), "u1", "Owner", "owner@example.com", "business")
	mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = b.user_id\nWHERE b.id = $1")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(row...))

	got, err := repo.GetWithOwner(context.Background(), "b1")
	if err != nil {
		t.Fatalf("GetWithOwner() error = %v", err)
	}
	if got.BusinessName != "Quick Fix" || got.TotalEarnings != 1200.5 || got.Description != nil {
		t.Fatalf("unexpected business %+v", got.BusinessEntity)
	}
	want := model.BusinessOwner{ID: "u1", Name: "Owner", Email: "owner@example.com", Type: constant.UserTypeBusiness}
	if got.Owner != want {
		t.Fatalf("Owner = %+v, want %+v", got.Owner, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestBusinessRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM businesses b WHERE b.id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(businessColumns))

	got, err := repo.GetByID(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("GetByID() = %+v, %v; want nil, nil", got, err)
	}
}

func TestBusinessRepository_GetByUserID(t *testing.T) {
	now := time.Now().UTC()
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.user_id = $1 ORDER BY b.created_at")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(businessColumns).AddRow(businessRow(now)...))

	got, err := repo.GetByUserID(context.Background(), "u1")
	if err != nil || got == nil || got.ID != "b1" {
		t.Fatalf("GetByUserID() = %+v, %v", got, err)
	}
}

func TestBusinessRepository_LockAndUpdateStats(t *testing.T) {
	now := time.Now().UTC()
	repo, conn, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM businesses b WHERE b.id = $1 FOR UPDATE")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows(businessColumns).AddRow(businessRow(now)...))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE businesses SET total_earnings = $1, completed_requests = $2, active_requests = $3, average_rating = $4")).
		WithArgs(1500.5, int64(4), int64(0), 4.5, sqlmock.AnyArg(), "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	biz, err := repo.GetForUpdateTx(context.Background(), tx, "b1")
	if err != nil {
		t.Fatalf("GetForUpdateTx() error = %v", err)
	}
	biz.TotalEarnings += 300
	biz.CompletedRequests++
	biz.ActiveRequests--
	if err := repo.UpdateStatsTx(context.Background(), tx, biz); err != nil {
		t.Fatalf("UpdateStatsTx() error = %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestBusinessRepository_ListReviews(t *testing.T) {
	now := time.Now().UTC()
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("sr.status = 'completed' AND sr.rating IS NOT NULL")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_name", "rating", "review", "completed_at", "updated_at"}).
			AddRow("r1", "Ali", 5.0, "great", now, now).
			AddRow("r2", nil, 4.0, nil, nil, now))

	got, err := repo.ListReviews(context.Background(), "b1")
	if err != nil {
		t.Fatalf("ListReviews() error = %v", err)
	}
	if len(got) != 2 || got[1].CustomerName != nil || got[1].CompletedAt != nil {
		t.Fatalf("unexpected reviews %+v", got)
	}
}

func TestBusinessRepository_GetDailyStats(t *testing.T) {
	repo, _, mock := newRepo(t)
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM service_requests\nWHERE business_id = $1")).
		WithArgs("b1", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"today_earnings", "today_requests", "completed_today", "rejected_today", "pending_approval", "in_progress"}).
			AddRow(450.0, 5, 2, 1, 1, 1))

	got, err := repo.GetDailyStats(context.Background(), "b1", from, to)
	if err != nil {
		t.Fatalf("GetDailyStats() error = %v", err)
	}
	want := model.DailyStats{TodayEarnings: 450, TodayRequests: 5, CompletedToday: 2, RejectedToday: 1, PendingApproval: 1, InProgress: 1}
	if *got != want {
		t.Fatalf("GetDailyStats() = %+v, want %+v", got, want)
	}
}
