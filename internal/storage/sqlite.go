package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/edukit/edukit/internal/dbx"
	"github.com/edukit/edukit/internal/logging"
)

// SQLiteStore implements Store over a single kv(key, value) table.
// It is bound to a dbx.DBTX, so it works over either *sql.DB or *sql.Tx.
type SQLiteStore struct {
	db  dbx.DBTX
	log logging.Logger
}

// NewSQLiteStore returns a SQLiteStore bound to the given handle.
func NewSQLiteStore(db dbx.DBTX, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, log: log.With("component", "storage")}
}

func (s *SQLiteStore) Get(ctx context.Context, key string, v any) bool {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		s.log.Warn(ctx, "read failed, treating as absent", "key", key, "error", err.Error())
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.log.Warn(ctx, "corrupt value, treating as absent", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (s *SQLiteStore) Set(ctx context.Context, key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error(ctx, "marshal failed", "key", key, "error", err.Error())
		return false
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, raw)
	if err != nil {
		s.log.Error(ctx, "write failed", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) bool {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Error(ctx, "remove failed", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (s *SQLiteStore) Clear(ctx context.Context) bool {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		s.log.Error(ctx, "clear failed", "error", err.Error())
		return false
	}
	return true
}
