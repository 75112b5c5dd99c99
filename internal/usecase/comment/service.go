// Package comment contains the application logic for article comments.
package comment

import (
	"context"
	"strings"
	"time"

	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

// NewComment is the payload accepted when posting a comment. Votes is
// optional and defaults to zero.
type NewComment struct {
	Username string
	Body     string
	Votes    int
}

// Service wires comment operations to their repositories. Articles is
// consulted only on reads; inserts rely on the articles foreign key.
type Service struct {
	Repo     repository.CommentRepository
	Articles repository.ArticleRepository
	Users    repository.UserRepository
}

// ListByArticle returns every comment for the given article, newest
// first. The article itself must exist; an empty comment list is not an
// error.
func (s *Service) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	ok, err := s.Articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entity.ErrArticleNotFound
	}
	return s.Repo.ListByArticle(ctx, articleID)
}

// Add stores a new comment authored by the named user. The author's
// email is resolved from the users table.
func (s *Service) Add(ctx context.Context, articleID int64, in NewComment) (*entity.Comment, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Body) == "" {
		return nil, entity.ErrInvalidData
	}

	author, err := s.Users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, entity.ErrUserNotFound
	}

	return s.Repo.Insert(ctx, &entity.Comment{
		Body:      in.Body,
		ArticleID: articleID,
		Email:     author.Email,
		Author:    author.Username,
		Votes:     in.Votes,
		CreatedAt: time.Now(),
	})
}

// Delete removes a comment by id.
func (s *Service) Delete(ctx context.Context, commentID int64) error {
	deleted, err := s.Repo.Delete(ctx, commentID)
	if err != nil {
		return err
	}
	if !deleted {
		return entity.ErrNotFound
	}
	return nil
}
