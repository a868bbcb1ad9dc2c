package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestContactSQLite(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()
	repo := NewContactSQLite(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(selectContactsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone"}).
			AddRow(1, "Ada", "0121 496 0000").
			AddRow(2, "Grace", "0121 496 0001"))

	list, err := repo.List(ctx)
	if err != nil || len(list) != 2 || list[1].Name != "Grace" {
		t.Fatalf("List() = %+v, %v", list, err)
	}

	mock.ExpectExec(regexp.QuoteMeta(insertContactSQL)).
		WithArgs("Ada", "0121").
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := repo.Create(ctx, "Ada", "0121")
	if err != nil || id != 3 {
		t.Fatalf("Create() = %d, %v; want 3, nil", id, err)
	}

	mock.ExpectExec(regexp.QuoteMeta(deleteContactSQL)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	found, err := repo.Delete(ctx, 3)
	if err != nil || !found {
		t.Fatalf("Delete() = %v, %v; want true, nil", found, err)
	}

	mock.ExpectExec(regexp.QuoteMeta(deleteContactSQL)).
		WithArgs(4).
		WillReturnError(errors.New("locked"))

	if _, err := repo.Delete(ctx, 4); err == nil {
		t.Fatalf("expected error from Delete")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
