// Package record implements the record backend on a PostgreSQL table.
// Values are stored as JSONB; the upsert is built with squirrel.
package record

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/careportal-backend/internal/adapter/postgres"
)

const table = "records"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo is a record.Backend backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new record repository.
func New(pool *pgxpool.Pool, tx *postgres.TxManager) *Repo {
	return &Repo{pool: pool, tx: tx}
}

// ---------------------------------------------------------------------------
// Backend
// ---------------------------------------------------------------------------

// Get returns the raw value at key, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select("value").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, postgres.MapError(err, "record", key)
	}
	return value, nil
}

// Set upserts value at key.
func (r *Repo) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := psql.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, sq.Expr("?::jsonb", string(value)), sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "record", key)
	}
	return nil
}

// Remove deletes the given keys. Absent keys are ignored.
func (r *Repo) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := psql.
		Delete(table).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "record", fmt.Sprint(keys))
	}
	return nil
}

// RunAtomic runs fn in one transaction; repo calls made with its ctx join it.
func (r *Repo) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.tx.RunInTx(ctx, fn)
}
