package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueKey returns a record key that no other test uses.
func UniqueKey(prefix string) string {
	return prefix + uuid.New().String()[:8]
}

// SeedRecord writes a raw JSON value under key, bypassing the repository.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, key, value string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO records (key, value, updated_at) VALUES ($1, $2::jsonb, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		t.Fatalf("testhelper: seed record %s: %v", key, err)
	}
}

// RecordExists reports whether a row for key is present.
func RecordExists(t *testing.T, pool *pgxpool.Pool, key string) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM records WHERE key = $1)`, key,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: record exists %s: %v", key, err)
	}
	return exists
}
