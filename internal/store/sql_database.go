package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/migrations"
)

// DB wraps an open database connection together with the query-builder
// settings matching its driver.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for this connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
