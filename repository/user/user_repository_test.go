package user_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
	userrepo "github.com/muhammadheryan/tamirse/repository/user"
)

var userColumns = []string{"id", "name", "email", "password_hash", "type", "is_active", "phone", "created_at", "updated_at"}

func newRepo(t *testing.T) (userrepo.UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return userrepo.NewUserRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestUserRepository_Get(t *testing.T) {
	now := time.Now().UTC()
	tests := []struct {
		name      string
		filter    *model.UserFilter
		wantQuery string
		args      []driver.Value
		rows      *sqlmock.Rows
		wantNil   bool
	}{
		{
			name:      "by email",
			filter:    &model.UserFilter{Email: "a@example.com"},
			wantQuery: "FROM users WHERE true AND email = $1",
			args:      []driver.Value{"a@example.com"},
			rows: sqlmock.NewRows(userColumns).
				AddRow("u1", "Ali", "a@example.com", "hash", "customer", true, nil, now, now),
		},
		{
			name:      "by id and email",
			filter:    &model.UserFilter{ID: "u1", Email: "a@example.com"},
			wantQuery: "FROM users WHERE true AND id = $1 AND email = $2",
			args:      []driver.Value{"u1", "a@example.com"},
			rows: sqlmock.NewRows(userColumns).
				AddRow("u1", "Ali", "a@example.com", "hash", "business", false, "555", now, now),
		},
		{
			name:      "no rows returns nil",
			filter:    &model.UserFilter{ID: "missing"},
			wantQuery: "FROM users WHERE true AND id = $1",
			args:      []driver.Value{"missing"},
			rows:      sqlmock.NewRows(userColumns),
			wantNil:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery)).WithArgs(tt.args...).WillReturnRows(tt.rows)

			got, err := repo.Get(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if (got == nil) != tt.wantNil {
				t.Fatalf("Get() = %+v, wantNil %v", got, tt.wantNil)
			}
			if got != nil && got.ID != "u1" {
				t.Fatalf("ID = %s, want u1", got.ID)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectations: %v", err)
			}
		})
	}
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "Ali", "a@example.com", "hash", "customer", true, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &model.UserEntity{
		Name: "Ali", Email: "a@example.com", PasswordHash: "hash", Type: constant.UserTypeCustomer, IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID == "" || got.CreatedAt.IsZero() {
		t.Fatalf("Create() should assign id and timestamps, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUserRepository_Update(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		wantErr error
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "missing user", result: sqlmock.NewResult(0, 0), wantErr: sql.ErrNoRows},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET name = $1, email = $2, phone = $3, updated_at = $4 WHERE id = $5")).
				WithArgs("Ali", "a@example.com", nil, sqlmock.AnyArg(), "u1").
				WillReturnResult(tt.result)

			err := repo.Update(context.Background(), &model.UserEntity{ID: "u1", Name: "Ali", Email: "a@example.com"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := repo.Create(context.Background(), &model.UserEntity{Name: "Ayse", Email: "ayse@example.com"})
	if !userrepo.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert user: %w", &pq.Error{Code: "23505"}), want: true},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, want: false},
		{name: "plain error", err: errors.New("connection reset"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := userrepo.IsUniqueViolation(tt.err); got != tt.want {
				t.Fatalf("IsUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}
