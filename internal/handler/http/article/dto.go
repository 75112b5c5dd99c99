// Package article provides HTTP handlers for the article endpoints:
// listing, single-article reads, and vote updates.
package article

import (
	"time"

	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

// DTO is the article shape on read paths. comment_count keeps the
// string type the aggregate query produces.
type DTO struct {
	ID           int64     `json:"article_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	Email        string    `json:"email"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	ImageURL     string    `json:"article_img_url"`
	CommentCount string    `json:"comment_count"`
}

// mutatedDTO is the article shape returned from vote updates. Mutations
// report created_at as epoch milliseconds rather than a timestamp.
type mutatedDTO struct {
	ID        int64  `json:"article_id"`
	Title     string `json:"title"`
	Topic     string `json:"topic"`
	Author    string `json:"author"`
	Email     string `json:"email"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
	Votes     int    `json:"votes"`
	ImageURL  string `json:"article_img_url"`
}

func toDTO(row repository.ArticleWithCount) DTO {
	a := row.Article
	return DTO{
		ID:           a.ID,
		Title:        a.Title,
		Topic:        a.Topic,
		Author:       a.Author,
		Email:        a.Email,
		Body:         a.Body,
		CreatedAt:    a.CreatedAt,
		Votes:        a.Votes,
		ImageURL:     a.ImageURL,
		CommentCount: row.CommentCount,
	}
}

func toMutatedDTO(a *entity.Article) mutatedDTO {
	return mutatedDTO{
		ID:        a.ID,
		Title:     a.Title,
		Topic:     a.Topic,
		Author:    a.Author,
		Email:     a.Email,
		Body:      a.Body,
		CreatedAt: a.CreatedAt.UnixMilli(),
		Votes:     a.Votes,
		ImageURL:  a.ImageURL,
	}
}
