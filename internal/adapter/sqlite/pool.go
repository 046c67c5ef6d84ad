// Package sqlite implements the record backend on a local SQLite file.
// It is the default single-device store.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/heartmarshall/careportal-backend/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);`

// Pool is a fixed-size pool of SQLite connections. Every connection gets
// WAL pragmas and the records schema on first use.
type Pool struct {
	inner *sqlitex.Pool
	log   *slog.Logger
	path  string
}

// Open creates the pool. The database file is created if it does not exist.
// The caller must call Close when done.
func Open(cfg config.SQLiteConfig, logger *slog.Logger) (*Pool, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}

	size := cfg.PoolSize
	if size <= 0 {
		size = 4
	}

	inner, err := sqlitex.NewPool(cfg.Path, sqlitex.PoolOptions{
		PoolSize:    size,
		PrepareConn: prepareConnection,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening %s: %w", cfg.Path, err)
	}

	logger.Info("sqlite pool opened",
		slog.String("path", cfg.Path),
		slog.Int("pool_size", size),
	)

	return &Pool{inner: inner, log: logger, path: cfg.Path}, nil
}

// Take borrows a connection. The caller must Put it back.
func (p *Pool) Take(ctx context.Context) (*sqlite.Conn, error) {
	conn, err := p.inner.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlite: take: %w", err)
	}
	return conn, nil
}

// Put returns a connection to the pool. Safe to call with nil.
func (p *Pool) Put(conn *sqlite.Conn) {
	p.inner.Put(conn)
}

// Close closes every connection, waiting for borrowed ones to return.
func (p *Pool) Close() error {
	if err := p.inner.Close(); err != nil {
		p.log.Error("sqlite pool close error",
			slog.String("path", p.path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("sqlite: closing %s: %w", p.path, err)
	}
	p.log.Info("sqlite pool closed", slog.String("path", p.path))
	return nil
}

func prepareConnection(conn *sqlite.Conn) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("sqlite: %s: %w", pragma, err)
		}
	}

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("sqlite: create schema: %w", err)
	}
	return nil
}
