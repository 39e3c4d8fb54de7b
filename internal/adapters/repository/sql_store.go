package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

var _ domain.KeyValueStore = (*SQLStore)(nil)

// SQLStore keeps the key/value document table in any database/sql backend
// that understands INSERT ... ON CONFLICT (Postgres, SQLite).
type SQLStore struct {
	db      *sqlx.DB
	schema  string
	timeout time.Duration
	name    string
}

func (r *SQLStore) DB() *sqlx.DB {
	return r.db
}

// EnsureSchema creates the kv_store table when it does not exist yet.
func (r *SQLStore) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.schema); err != nil {
		return fmt.Errorf("repository: %s schema: %w", r.name, err)
	}
	return nil
}

func (r *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := r.db.Rebind(`SELECT value FROM kv_store WHERE key = ?`)

	var value []byte
	if err := r.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, r.wrap("get", key, err)
	}
	return value, nil
}

func (r *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := r.db.Rebind(`
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
	`)

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC().UnixMilli()); err != nil {
		return r.wrap("set", key, err)
	}
	return nil
}

func (r *SQLStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM kv_store WHERE key = ?`), key); err != nil {
		return r.wrap("delete", key, err)
	}
	return nil
}

func (r *SQLStore) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLStore) Close() error {
	return r.db.Close()
}

func (r *SQLStore) wrap(op, key string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("repository: %s %s %s: kv_store table missing: %w", r.name, op, key, err)
	}
	return fmt.Errorf("repository: %s %s %s failed: %w", r.name, op, key, err)
}
