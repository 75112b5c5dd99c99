package entity

import "time"

// Comment is a reply attached to exactly one article.
// Deletion is terminal; there is no soft-delete.
type Comment struct {
	ID        int64
	Body      string
	ArticleID int64
	Email     string
	Author    string
	Votes     int
	CreatedAt time.Time
}
