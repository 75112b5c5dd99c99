// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"

	"newsboard/internal/repository"
)

// ArticleQueryBuilder builds the WHERE and ORDER BY fragments for article
// listing. It is shared between the COUNT and SELECT queries so the filter
// logic cannot drift apart. Sort columns are interpolated, never bound, so
// callers must pass identifiers that already passed the allowlist.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the topic filter clause and its arguments.
// Returns an empty string when no filter is set.
// PostgreSQL-specific: uses $N placeholders.
func (qb *ArticleQueryBuilder) BuildWhereClause(filter repository.ArticleFilter, tableAlias string) (clause string, args []interface{}) {
	if filter.Topic == nil {
		return "", nil
	}
	col := "topic"
	if tableAlias != "" {
		col = tableAlias + ".topic"
	}
	return fmt.Sprintf("WHERE %s = $1", col), []interface{}{*filter.Topic}
}

// BuildOrderBy builds the ORDER BY expression for an allowlisted sort.
// The comment_count aggregate is addressed through its alias; every other
// column is qualified with the table alias.
func (qb *ArticleQueryBuilder) BuildOrderBy(sort repository.ArticleSort, tableAlias string) string {
	col := sort.Column
	if col != "comment_count" && tableAlias != "" {
		col = tableAlias + "." + col
	}
	dir := "ASC"
	if sort.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", col, dir)
}
