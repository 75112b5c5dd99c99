package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	pg "newsboard/internal/infra/adapter/persistence/postgres"
)

func TestTopicRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM topics").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("coding", "Code is love, code is life").
			AddRow("football", "FOOTIE!"))

	repo := pg.NewTopicRepo(db)
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	if got[0].Slug != "coding" {
		t.Fatalf("Slug=%q, want coding", got[0].Slug)
	}
}
