package tx_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	txrepo "github.com/muhammadheryan/tamirse/repository/tx"
)

func TestTxRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := txrepo.NewTxRepository(sqlx.NewDb(db, "postgres"))

	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	tx, err := repo.BeginTx(context.Background())
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	if err := repo.CommitTx(tx); err != nil {
		t.Fatalf("CommitTx() error = %v", err)
	}

	tx, err = repo.BeginTx(context.Background())
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	if err := repo.RollbackTx(tx); err != nil {
		t.Fatalf("RollbackTx() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
