package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/topics.sql
var seedTopicsSQL string

//go:embed seeds/users.sql
var seedUsersSQL string

// MigrateUp creates the schema if it does not exist. Table order matters:
// articles reference topics and users, comments reference articles and
// users.
func MigrateUp(pool *sql.DB) error {
	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS topics (
    slug        VARCHAR PRIMARY KEY,
    description VARCHAR
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS users (
    email      VARCHAR PRIMARY KEY,
    username   VARCHAR NOT NULL UNIQUE,
    password   VARCHAR NOT NULL,
    avatar_url VARCHAR DEFAULT 'https://www.gravatar.com/avatar/00000000000000000000000000000000?d=mp&f=y'
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    article_id      SERIAL PRIMARY KEY,
    title           VARCHAR NOT NULL,
    topic           VARCHAR NOT NULL REFERENCES topics(slug),
    email           VARCHAR NOT NULL REFERENCES users(email),
    author          VARCHAR NOT NULL,
    body            VARCHAR NOT NULL,
    created_at      TIMESTAMP DEFAULT NOW(),
    votes           INT DEFAULT 0 NOT NULL,
    article_img_url VARCHAR DEFAULT 'https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700'
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS comments (
    comment_id SERIAL PRIMARY KEY,
    body       VARCHAR NOT NULL,
    article_id INT REFERENCES articles(article_id) NOT NULL,
    email      VARCHAR NOT NULL REFERENCES users(email),
    author     VARCHAR NOT NULL,
    votes      INT DEFAULT 0 NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Listing sorts on created_at DESC by default.
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		// Topic filter for the listing endpoint.
		`CREATE INDEX IF NOT EXISTS idx_articles_topic ON articles(topic)`,
		// Comment aggregation and per-article comment listing.
		`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// Seed inserts the baseline topics and users when the tables are empty.
// Articles and comments arrive through the API, so only the immutable
// reference data is seeded.
func Seed(pool *sql.DB) error {
	var topicCount int
	if err := pool.QueryRow(`SELECT COUNT(*) FROM topics`).Scan(&topicCount); err != nil {
		return err
	}
	if topicCount == 0 {
		if _, err := pool.Exec(seedTopicsSQL); err != nil {
			return err
		}
	}

	var userCount int
	if err := pool.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return err
	}
	if userCount == 0 {
		if _, err := pool.Exec(seedUsersSQL); err != nil {
			return err
		}
	}

	return nil
}
