package repository

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at BIGINT NOT NULL
	)`

const pgUndefinedTable = "42P01"

// NewPostgresStore wraps an open connection. Both the pgx and the lib/pq
// drivers work.
func NewPostgresStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{
		db:      db,
		schema:  postgresSchema,
		timeout: 3 * time.Second,
		name:    "postgres",
	}
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUndefinedTable
	}
	return false
}
