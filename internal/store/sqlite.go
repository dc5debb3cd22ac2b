package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/digitalai-opensource/job-dispatcher/internal/dbx"
)

// SQLiteStore implements Store over the kv table using a DBTX.
type SQLiteStore struct {
	db dbx.DBTX
}

// NewSQLiteStore returns a new SQLiteStore bound to the given DBTX.
func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("kv[%s]: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to get kv[%s]: %w", ErrPersistence, key, err)
	}
	return value, nil
}

// Set upserts the value stored under key.
func (s *SQLiteStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: failed to set kv[%s]: %w", ErrPersistence, key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
// It is not part of Store; the job repository never deletes records.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: failed to delete kv[%s]: %w", ErrPersistence, key, err)
	}
	return nil
}

// List returns every stored pair. It is not part of Store and is meant for
// tests and inspection tools.
func (s *SQLiteStore) List(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM kv`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list kv: %w", ErrPersistence, err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: failed to scan kv row: %w", ErrPersistence, err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate kv rows: %w", ErrPersistence, err)
	}

	return result, nil
}
