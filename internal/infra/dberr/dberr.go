// Package dberr translates raw PostgreSQL driver errors into the HTTP-style
// outcomes the API exposes. It understands both pgx (pgconn.PgError) and
// lib/pq (pq.Error) so the mapping does not depend on which driver produced
// the failure.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE codes the API classifies. Everything else falls through to the
// generic 500 handler.
const (
	codeInvalidTextRepresentation = "22P02"
	codeSyntaxError               = "42601"
	codeUndefinedColumn           = "42703"
)

// Classify inspects err for a known SQLSTATE and returns the status/message
// pair it maps to. A malformed identifier or broken statement is a client
// error; a reference to an undefined column reads as a missing resource.
// The second return is false when err carries no classifiable code.
func Classify(err error) (status int, message string, ok bool) {
	code := sqlState(err)
	switch code {
	case codeInvalidTextRepresentation, codeSyntaxError:
		return 400, "Bad Request", true
	case codeUndefinedColumn:
		return 404, "Not Found", true
	}
	return 0, "", false
}

// sqlState extracts the five-character SQLSTATE from a driver error chain.
func sqlState(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
