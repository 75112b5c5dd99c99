package repository

import (
	"context"

	"newsboard/internal/domain/entity"
)

// TopicRepository provides read access to the seeded topics.
type TopicRepository interface {
	List(ctx context.Context) ([]*entity.Topic, error)
}
