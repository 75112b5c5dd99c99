package topic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard/internal/domain/entity"
	"newsboard/internal/handler/http/topic"
	topUC "newsboard/internal/usecase/topic"
)

type stubTopicRepo struct {
	topics []*entity.Topic
	err    error
}

func (s *stubTopicRepo) List(_ context.Context) ([]*entity.Topic, error) {
	return s.topics, s.err
}

func TestList(t *testing.T) {
	mux := http.NewServeMux()
	topic.Register(mux, &topUC.Service{Repo: &stubTopicRepo{topics: []*entity.Topic{
		{Slug: "coding", Description: "Code is love, code is life"},
	}}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Topics []struct {
			Slug        string `json:"slug"`
			Description string `json:"description"`
		} `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Topics, 1)
	assert.Equal(t, "coding", body.Topics[0].Slug)
}

func TestList_EmptyTableIsOK(t *testing.T) {
	mux := http.NewServeMux()
	topic.Register(mux, &topUC.Service{Repo: &stubTopicRepo{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"topics":[]}`, rec.Body.String())
}

func TestList_RepoFailureIsOpaque(t *testing.T) {
	mux := http.NewServeMux()
	topic.Register(mux, &topUC.Service{Repo: &stubTopicRepo{err: context.DeadlineExceeded}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ooops something went wrong!", body["message"])
}
