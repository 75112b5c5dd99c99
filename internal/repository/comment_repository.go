package repository

import (
	"context"

	"newsboard/internal/domain/entity"
)

// CommentRepository provides access to stored comments.
type CommentRepository interface {
	// ListByArticle returns all comments for an article, newest first.
	ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error)

	// Insert stores a new comment and returns the created row, including
	// the generated id and timestamp.
	Insert(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)

	// Delete removes a comment by id and reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
