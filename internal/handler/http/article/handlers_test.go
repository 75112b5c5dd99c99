package article_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard/internal/common/pagination"
	"newsboard/internal/domain/entity"
	"newsboard/internal/handler/http/article"
	"newsboard/internal/repository"
	artUC "newsboard/internal/usecase/article"
)

/*────────────────────  fixtures  ────────────────────*/

type stubRepo struct {
	total   int64
	rows    []repository.ArticleWithCount
	updated *entity.Article
}

func (s *stubRepo) Count(_ context.Context, _ repository.ArticleFilter) (int64, error) {
	return s.total, nil
}

func (s *stubRepo) ListWithCount(_ context.Context, _ repository.ArticleFilter, _ repository.ArticleSort, _, _ int) ([]repository.ArticleWithCount, error) {
	return s.rows, nil
}

func (s *stubRepo) GetWithCount(_ context.Context, id int64) (*repository.ArticleWithCount, error) {
	for _, row := range s.rows {
		if row.Article.ID == id {
			return &row, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Exists(_ context.Context, id int64) (bool, error) {
	row, _ := s.GetWithCount(context.Background(), id)
	return row != nil, nil
}

func (s *stubRepo) AddVotes(_ context.Context, _ int64, _ float64) (*entity.Article, error) {
	return s.updated, nil
}

func newServer(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	svc := &artUC.Service{Repo: repo, Cfg: pagination.DefaultConfig()}
	article.Register(mux, svc, pagination.DefaultConfig(), slog.New(slog.DiscardHandler))
	return mux
}

func sampleRow(id int64) repository.ArticleWithCount {
	return repository.ArticleWithCount{
		Article: &entity.Article{
			ID:        id,
			Title:     "Running a Node App",
			Topic:     "coding",
			Email:     "jessjelly@jelly.dev",
			Author:    "jessjelly",
			Body:      "This is part two of a series...",
			CreatedAt: time.Date(2020, 11, 7, 6, 3, 0, 0, time.UTC),
			Votes:     0,
			ImageURL:  "https://images.pexels.com/photos/11035380.jpeg",
		},
		CommentCount: "8",
	}
}

func do(t *testing.T, mux *http.ServeMux, method, target, payload string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(payload))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body["message"]
}

/*────────────────────  GET /api/articles  ────────────────────*/

func TestList(t *testing.T) {
	mux := newServer(&stubRepo{total: 12, rows: []repository.ArticleWithCount{sampleRow(1), sampleRow(2)}})

	rec := do(t, mux, http.MethodGet, "/api/articles", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Articles []struct {
			ArticleID    int64  `json:"article_id"`
			Author       string `json:"author"`
			CommentCount string `json:"comment_count"`
			CreatedAt    string `json:"created_at"`
		} `json:"articles"`
		TotalCount int64 `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Articles, 2)
	assert.Equal(t, int64(12), body.TotalCount)
	assert.Equal(t, "8", body.Articles[0].CommentCount, "comment_count stays string-typed")
	assert.Equal(t, "2020-11-07T06:03:00Z", body.Articles[0].CreatedAt, "read paths use timestamps")
}

func TestList_BadPageLiteral(t *testing.T) {
	mux := newServer(&stubRepo{total: 12, rows: []repository.ArticleWithCount{sampleRow(1)}})

	rec := do(t, mux, http.MethodGet, "/api/articles?page=banana", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "banana value is invalid", message(t, rec))
}

func TestList_EmptyPageValue(t *testing.T) {
	mux := newServer(&stubRepo{total: 12, rows: []repository.ArticleWithCount{sampleRow(1)}})

	rec := do(t, mux, http.MethodGet, "/api/articles?page=", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, " value is invalid", message(t, rec))
}

func TestList_LimitCeiling(t *testing.T) {
	mux := newServer(&stubRepo{total: 12, rows: []repository.ArticleWithCount{sampleRow(1)}})

	rec := do(t, mux, http.MethodGet, "/api/articles?limit=51", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Limit exceeds the total number of articles", message(t, rec))
}

func TestList_UnknownSortColumn(t *testing.T) {
	mux := newServer(&stubRepo{total: 12, rows: []repository.ArticleWithCount{sampleRow(1)}})

	rec := do(t, mux, http.MethodGet, "/api/articles?sort_by=nonsense", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", message(t, rec))
}

func TestList_BadOrder(t *testing.T) {
	mux := newServer(&stubRepo{total: 12, rows: []repository.ArticleWithCount{sampleRow(1)}})

	rec := do(t, mux, http.MethodGet, "/api/articles?order=sideways", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Bad Request", message(t, rec))
}

func TestList_EmptyTopicMatchesNothing(t *testing.T) {
	mux := newServer(&stubRepo{total: 0, rows: nil})

	rec := do(t, mux, http.MethodGet, "/api/articles?topic=", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", message(t, rec))
}

/*────────────────────  GET /api/articles/{article_id}  ────────────────────*/

func TestGet(t *testing.T) {
	mux := newServer(&stubRepo{rows: []repository.ArticleWithCount{sampleRow(1)}})

	rec := do(t, mux, http.MethodGet, "/api/articles/1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Article struct {
			ArticleID    int64  `json:"article_id"`
			Title        string `json:"title"`
			CommentCount string `json:"comment_count"`
		} `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Article.ArticleID)
	assert.Equal(t, "8", body.Article.CommentCount)
}

func TestGet_MalformedID(t *testing.T) {
	mux := newServer(&stubRepo{})

	rec := do(t, mux, http.MethodGet, "/api/articles/banana", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Bad Request", message(t, rec))
}

func TestGet_Missing(t *testing.T) {
	mux := newServer(&stubRepo{})

	rec := do(t, mux, http.MethodGet, "/api/articles/9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", message(t, rec))
}

/*────────────────────  PATCH /api/articles/{article_id}  ────────────────────*/

func TestUpdateVotes(t *testing.T) {
	updated := sampleRow(1).Article
	updated.Votes = -10
	mux := newServer(&stubRepo{rows: []repository.ArticleWithCount{sampleRow(1)}, updated: updated})

	rec := do(t, mux, http.MethodPatch, "/api/articles/1", `{"inc_votes":-10}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Article struct {
			Votes     int   `json:"votes"`
			CreatedAt int64 `json:"created_at"`
		} `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, -10, body.Article.Votes)
	assert.Equal(t, updated.CreatedAt.UnixMilli(), body.Article.CreatedAt,
		"mutations report created_at as epoch milliseconds")
}

func TestUpdateVotes_Rejections(t *testing.T) {
	mux := newServer(&stubRepo{rows: []repository.ArticleWithCount{sampleRow(1)}})

	for _, payload := range []string{`{}`, `{"inc_votes":0}`, `{"inc_votes":"ten"}`, `not json`} {
		rec := do(t, mux, http.MethodPatch, "/api/articles/1", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload %s", payload)
		assert.Equal(t, "Bad Request", message(t, rec))
	}
}

func TestUpdateVotes_MissingArticle(t *testing.T) {
	mux := newServer(&stubRepo{updated: nil})

	rec := do(t, mux, http.MethodPatch, "/api/articles/77", `{"inc_votes":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "This article does not exist", message(t, rec))
}
