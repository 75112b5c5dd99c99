// Package topic contains the application logic for topics.
package topic

import (
	"context"

	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

type Service struct {
	Repo repository.TopicRepository
}

// List returns every topic. An empty table yields an empty slice, not an
// error.
func (s *Service) List(ctx context.Context) ([]*entity.Topic, error) {
	return s.Repo.List(ctx)
}
