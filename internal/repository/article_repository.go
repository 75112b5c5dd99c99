// Package repository defines persistence interfaces for domain entities.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"newsboard/internal/domain/entity"
)

// ArticleFilter restricts a listing to articles of one topic slug.
// A nil Topic means no filtering.
type ArticleFilter struct {
	Topic *string
}

// ArticleSort describes an already-allowlisted sort order. Column must be a
// safe identifier taken from the article projection; it is interpolated into
// SQL, so implementations trust the caller to have checked it.
type ArticleSort struct {
	Column     string
	Descending bool
}

// ArticleWithCount pairs an article with its derived comment_count
// aggregate. The count is string-typed at the boundary, following the
// store's count-aggregation convention.
type ArticleWithCount struct {
	Article      *entity.Article
	CommentCount string
}

// ArticleRepository provides access to stored articles.
type ArticleRepository interface {
	// Count returns the size of the filtered set, independent of pagination.
	Count(ctx context.Context, filter ArticleFilter) (int64, error)

	// ListWithCount returns one page of the filtered set with derived
	// comment counts, ordered per sort.
	ListWithCount(ctx context.Context, filter ArticleFilter, sort ArticleSort, limit, offset int) ([]ArticleWithCount, error)

	// GetWithCount returns a single article with its comment count, or
	// (nil, nil) when no article has the given id.
	GetWithCount(ctx context.Context, id int64) (*ArticleWithCount, error)

	// Exists reports whether an article with the given id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// AddVotes applies votes += delta in a single statement and returns the
	// updated article, or (nil, nil) when no article has the given id.
	// Delta stays float64 on the wire; the store rounds on assignment to
	// the integer votes column.
	AddVotes(ctx context.Context, id int64, delta float64) (*entity.Article, error)
}
