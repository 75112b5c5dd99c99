package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

const articleColumns = `a.article_id, a.title, a.topic, a.email, a.author, a.body, a.created_at, a.votes, a.article_img_url`

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func (repo *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	where, args := repo.queryBuilder.BuildWhereClause(filter, "")
	query := "SELECT COUNT(*) FROM articles"
	if where != "" {
		query += " " + where
	}

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

// ListWithCount returns one page of the filtered set. The comment count
// aggregate is scanned as text, matching the store's count convention at
// the interface boundary.
func (repo *ArticleRepo) ListWithCount(ctx context.Context, filter repository.ArticleFilter, sort repository.ArticleSort, limit, offset int) ([]repository.ArticleWithCount, error) {
	where, args := repo.queryBuilder.BuildWhereClause(filter, "a")
	orderBy := repo.queryBuilder.BuildOrderBy(sort, "a")

	query := fmt.Sprintf(`
SELECT %s, COUNT(c.comment_id)::text AS comment_count
FROM articles a
LEFT JOIN comments c ON a.article_id = c.article_id
%s
GROUP BY a.article_id
%s
LIMIT $%d OFFSET $%d`, articleColumns, where, orderBy, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListWithCount: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithCount, 0, limit)
	for rows.Next() {
		var article entity.Article
		var commentCount string
		if err := rows.Scan(&article.ID, &article.Title, &article.Topic, &article.Email,
			&article.Author, &article.Body, &article.CreatedAt, &article.Votes,
			&article.ImageURL, &commentCount); err != nil {
			return nil, fmt.Errorf("ListWithCount: Scan: %w", err)
		}
		result = append(result, repository.ArticleWithCount{
			Article:      &article,
			CommentCount: commentCount,
		})
	}
	return result, rows.Err()
}

func (repo *ArticleRepo) GetWithCount(ctx context.Context, id int64) (*repository.ArticleWithCount, error) {
	query := fmt.Sprintf(`
SELECT %s, COUNT(c.comment_id)::text AS comment_count
FROM articles a
LEFT JOIN comments c ON a.article_id = c.article_id
WHERE a.article_id = $1
GROUP BY a.article_id`, articleColumns)

	var article entity.Article
	var commentCount string
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Topic, &article.Email,
			&article.Author, &article.Body, &article.CreatedAt, &article.Votes,
			&article.ImageURL, &commentCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetWithCount: %w", err)
	}
	return &repository.ArticleWithCount{Article: &article, CommentCount: commentCount}, nil
}

func (repo *ArticleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return exists, nil
}

// AddVotes applies the increment in a single statement; the store's
// per-statement atomicity is the only consistency guarantee needed.
func (repo *ArticleRepo) AddVotes(ctx context.Context, id int64, delta float64) (*entity.Article, error) {
	const query = `
UPDATE articles
SET votes = votes + $1
WHERE article_id = $2
RETURNING article_id, title, topic, email, author, body, created_at, votes, article_img_url`

	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, delta, id).
		Scan(&article.ID, &article.Title, &article.Topic, &article.Email,
			&article.Author, &article.Body, &article.CreatedAt, &article.Votes,
			&article.ImageURL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("AddVotes: %w", err)
	}
	return &article, nil
}
