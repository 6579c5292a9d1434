package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator maps driver-specific errors onto the conditions the
// repository cares about.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err represents a primary-key or
	// unique-constraint violation.
	IsUniqueViolation(err error) bool
}

type postgresErrorClassifier struct{}

// NewPostgresErrorClassifier returns the pgerrcode-based classifier used by
// Postgres-backed caches.
func NewPostgresErrorClassifier() ErrorClassificator {
	return postgresErrorClassifier{}
}

func (postgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// noopErrorClassifier is used for drivers without structured error codes;
// the SQLite driver reports constraint violations as plain strings.
type noopErrorClassifier struct{}

func (noopErrorClassifier) IsUniqueViolation(err error) bool {
	return false
}
