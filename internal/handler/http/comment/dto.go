// Package comment provides HTTP handlers for the comment endpoints.
package comment

import (
	"time"

	"newsboard/internal/domain/entity"
)

// DTO is the comment shape on read paths.
type DTO struct {
	ID        int64     `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// createdDTO is the comment shape returned from inserts; created_at is
// epoch milliseconds on mutation responses.
type createdDTO struct {
	ID        int64  `json:"comment_id"`
	Body      string `json:"body"`
	ArticleID int64  `json:"article_id"`
	Author    string `json:"author"`
	Votes     int    `json:"votes"`
	CreatedAt int64  `json:"created_at"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		ID:        c.ID,
		Body:      c.Body,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}

func toCreatedDTO(c *entity.Comment) createdDTO {
	return createdDTO{
		ID:        c.ID,
		Body:      c.Body,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt.UnixMilli(),
	}
}
