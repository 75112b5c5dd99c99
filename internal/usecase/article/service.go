// Package article provides use cases for listing and mutating articles.
// It implements the query normalization and pagination rules for the
// listing endpoint and the single-statement vote update.
package article

import (
	"context"
	"fmt"
	"strings"

	"newsboard/internal/common/pagination"
	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

// sortColumns is the allowlist of sortable identifiers on the article
// projection. Only values from this map ever reach the SQL layer; the raw
// sort_by input is never interpolated.
var sortColumns = map[string]string{
	"article_id":      "article_id",
	"title":           "title",
	"topic":           "topic",
	"author":          "author",
	"email":           "email",
	"body":            "body",
	"created_at":      "created_at",
	"votes":           "votes",
	"article_img_url": "article_img_url",
	"comment_count":   "comment_count",
}

// ListQuery carries the optional listing parameters. A nil pointer means
// the parameter was absent; a pointer to an empty string means the query
// flag was supplied without a value, which is rejected.
type ListQuery struct {
	Topic  *string
	SortBy *string
	Order  *string
}

// ListResult is one page of articles plus the size of the whole filtered
// set, independent of page and limit.
type ListResult struct {
	Articles   []repository.ArticleWithCount
	TotalCount int64
}

// Service provides article use cases.
type Service struct {
	Repo repository.ArticleRepository
	Cfg  pagination.Config
}

// List produces a page of the filtered article set.
//
// The check order is part of the observable contract: the filtered total
// is computed first, the limit ceiling is applied against it, then the
// sort is normalized, and only then does the page query run. An empty
// result at any of those points maps to its historical status/message
// pair.
func (s *Service) List(ctx context.Context, q ListQuery, params pagination.Params) (*ListResult, error) {
	filter := repository.ArticleFilter{Topic: q.Topic}

	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	pagination.UpdateTotalCount(total)

	if total > 0 && params.Limit > s.Cfg.MaxLimit {
		return nil, entity.ErrLimitExceeded
	}

	sort, err := normalizeSort(q.SortBy, q.Order)
	if err != nil {
		return nil, err
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	articles, err := s.Repo.ListWithCount(ctx, filter, sort, params.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	// Covers both an unknown topic and a page beyond range; the two are
	// deliberately not distinguished.
	if len(articles) == 0 {
		return nil, entity.ErrNotFound
	}

	return &ListResult{Articles: articles, TotalCount: total}, nil
}

// Get returns a single article with its comment count.
func (s *Service) Get(ctx context.Context, id int64) (*repository.ArticleWithCount, error) {
	article, err := s.Repo.GetWithCount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, entity.ErrNotFound
	}
	return article, nil
}

// UpdateVotes applies votes += incVotes. A nil or zero increment is
// rejected exactly like an absent one.
func (s *Service) UpdateVotes(ctx context.Context, id int64, incVotes *float64) (*entity.Article, error) {
	if incVotes == nil || *incVotes == 0 {
		return nil, entity.ErrBadRequest
	}

	article, err := s.Repo.AddVotes(ctx, id, *incVotes)
	if err != nil {
		return nil, fmt.Errorf("update votes: %w", err)
	}
	if article == nil {
		return nil, entity.ErrArticleNotFound
	}
	return article, nil
}

// normalizeSort resolves the optional sort_by/order pair to an allowlisted
// column and direction. Defaults: created_at DESC.
func normalizeSort(sortBy, order *string) (repository.ArticleSort, error) {
	sort := repository.ArticleSort{Column: "created_at", Descending: true}

	if sortBy != nil {
		if *sortBy == "" {
			return sort, entity.ErrBadRequest
		}
		col, ok := sortColumns[*sortBy]
		if !ok {
			return sort, entity.ErrSortColumnUnknown
		}
		sort.Column = col
	}

	if order != nil {
		switch strings.ToLower(*order) {
		case "asc":
			sort.Descending = false
		case "desc":
			sort.Descending = true
		default:
			return sort, entity.ErrOrderInvalid
		}
	}

	return sort, nil
}
