package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	const query = `
SELECT comment_id, body, article_id, email, author, votes, created_at
FROM comments
WHERE article_id = $1
ORDER BY created_at DESC`

	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 16)
	for rows.Next() {
		var comment entity.Comment
		if err := rows.Scan(&comment.ID, &comment.Body, &comment.ArticleID,
			&comment.Email, &comment.Author, &comment.Votes, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Insert(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	const query = `
INSERT INTO comments (article_id, email, author, body, votes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING comment_id, body, article_id, email, author, votes, created_at`

	var created entity.Comment
	err := repo.db.QueryRowContext(ctx, query,
		comment.ArticleID, comment.Email, comment.Author, comment.Body,
		comment.Votes, comment.CreatedAt).
		Scan(&created.ID, &created.Body, &created.ArticleID, &created.Email,
			&created.Author, &created.Votes, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("Insert: %w", err)
	}
	return &created, nil
}

// Delete removes a comment by id. The bool reports whether a row existed;
// deleting an already-deleted comment is not an error at this layer.
func (repo *CommentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM comments WHERE comment_id = $1`

	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return affected > 0, nil
}
