package sqlite

import (
	"context"
	"fmt"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

const (
	getSQL    = `SELECT value FROM records WHERE key = ?`
	upsertSQL = `
INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteSQL = `DELETE FROM records WHERE key = ?`
)

type connCtxKey struct{}

// Backend is a record.Backend over a Pool.
type Backend struct {
	pool *Pool
	now  func() time.Time
}

// NewBackend creates a backend over pool.
func NewBackend(pool *Pool) *Backend {
	return &Backend{pool: pool, now: time.Now}
}

// withConn hands fn the connection carried in ctx by RunAtomic, or a
// freshly borrowed one.
func (b *Backend) withConn(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	if conn, ok := ctx.Value(connCtxKey{}).(*sqlite.Conn); ok {
		return fn(conn)
	}

	conn, err := b.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer b.pool.Put(conn)

	return fn(conn)
}

// Get returns the raw value at key, or domain.ErrNotFound.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var (
		value []byte
		found bool
	)

	err := b.withConn(ctx, func(conn *sqlite.Conn) error {
		return sqlitex.Execute(conn, getSQL, &sqlitex.ExecOptions{
			Args: []any{key},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				value = make([]byte, stmt.ColumnLen(0))
				stmt.ColumnBytes(0, value)
				found = true
				return nil
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", key, err)
	}
	if !found {
		return nil, fmt.Errorf("record %s: %w", key, domain.ErrNotFound)
	}
	return value, nil
}

// Set upserts value at key.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	err := b.withConn(ctx, func(conn *sqlite.Conn) error {
		return sqlitex.Execute(conn, upsertSQL, &sqlitex.ExecOptions{
			Args: []any{key, value, b.now().UnixMilli()},
		})
	})
	if err != nil {
		return fmt.Errorf("record %s: %w", key, err)
	}
	return nil
}

// Remove deletes keys in one savepoint. Absent keys are ignored.
func (b *Backend) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return b.withConn(ctx, func(conn *sqlite.Conn) (err error) {
		release := sqlitex.Save(conn)
		defer release(&err)

		for _, key := range keys {
			if err = sqlitex.Execute(conn, deleteSQL, &sqlitex.ExecOptions{Args: []any{key}}); err != nil {
				return fmt.Errorf("record %s: %w", key, err)
			}
		}
		return nil
	})
}

// RunAtomic runs fn in an IMMEDIATE transaction on one connection. Backend
// calls made with the ctx passed to fn use that connection.
func (b *Backend) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(connCtxKey{}).(*sqlite.Conn); ok {
		return fn(ctx)
	}

	conn, err := b.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer b.pool.Put(conn)

	return runImmediate(ctx, conn, fn)
}

func runImmediate(ctx context.Context, conn *sqlite.Conn, fn func(ctx context.Context) error) (err error) {
	endTransaction, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return fmt.Errorf("sqlite: begin transaction: %w", err)
	}
	defer endTransaction(&err)

	return fn(context.WithValue(ctx, connCtxKey{}, conn))
}
