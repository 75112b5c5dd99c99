// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, Topic, User and Comment,
// along with their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a posted item belonging to a topic.
// Votes may go negative; decrementing below zero is allowed.
type Article struct {
	ID        int64
	Title     string
	Topic     string
	Email     string
	Author    string
	Body      string
	CreatedAt time.Time
	Votes     int
	ImageURL  string
}
