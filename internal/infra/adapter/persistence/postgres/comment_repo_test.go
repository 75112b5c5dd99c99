package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"newsboard/internal/domain/entity"
	pg "newsboard/internal/infra/adapter/persistence/postgres"
)

var commentCols = []string{
	"comment_id", "body", "article_id", "email", "author", "votes", "created_at",
}

func cmtRow(c *entity.Comment) *sqlmock.Rows {
	return sqlmock.NewRows(commentCols).AddRow(
		c.ID, c.Body, c.ArticleID, c.Email, c.Author, c.Votes, c.CreatedAt,
	)
}

func TestCommentRepo_ListByArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	want := &entity.Comment{
		ID: 5, Body: "great read", ArticleID: 1,
		Email: "grumpy19@example.com", Author: "grumpy19",
		Votes: 2, CreatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE article_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(cmtRow(want))

	repo := pg.NewCommentRepo(db)
	got, err := repo.ListByArticle(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByArticle err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len=%d, want 1", len(got))
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentRepo_ListByArticleEmpty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM comments").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(commentCols))

	repo := pg.NewCommentRepo(db)
	got, err := repo.ListByArticle(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListByArticle err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
}

func TestCommentRepo_Insert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	in := &entity.Comment{
		Body: "insightful", ArticleID: 3,
		Email: "tickle122@example.com", Author: "tickle122",
		Votes: 0, CreatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs(in.ArticleID, in.Email, in.Author, in.Body, in.Votes, in.CreatedAt).
		WillReturnRows(sqlmock.NewRows(commentCols).AddRow(
			int64(11), in.Body, in.ArticleID, in.Email, in.Author, in.Votes, now,
		))

	repo := pg.NewCommentRepo(db)
	got, err := repo.Insert(context.Background(), in)
	if err != nil {
		t.Fatalf("Insert err=%v", err)
	}
	if got.ID != 11 {
		t.Fatalf("ID=%d, want generated id 11", got.ID)
	}
}

func TestCommentRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments WHERE comment_id = $1")).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewCommentRepo(db)
	deleted, err := repo.Delete(context.Background(), 11)
	if err != nil || !deleted {
		t.Fatalf("Delete deleted=%v err=%v", deleted, err)
	}
}

func TestCommentRepo_DeleteMissing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewCommentRepo(db)
	deleted, err := repo.Delete(context.Background(), 404)
	if err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if deleted {
		t.Fatal("deleted=true for missing comment")
	}
}
