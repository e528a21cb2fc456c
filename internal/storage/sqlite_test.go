package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edukit/internal/logging"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func newStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	return NewSQLiteStore(db, logging.NewDiscard()), db
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSetAndGet_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.True(t, s.Set(ctx, "k", payload{Name: "n", Count: 3}))

	var got payload
	require.True(t, s.Get(ctx, "k", &got))
	require.Equal(t, payload{Name: "n", Count: 3}, got)
}

func TestGet_Absent_ReturnsFalse(t *testing.T) {
	s, _ := newStore(t)

	var got payload
	ok := s.Get(context.Background(), "missing", &got)
	require.False(t, ok)
	require.Zero(t, got)
}

func TestGet_CorruptValue_ReturnsFalse(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO kv(key, value) VALUES('bad', '{not json')`)
	require.NoError(t, err)

	var got payload
	assert.False(t, s.Get(ctx, "bad", &got))
}

func TestSet_OverwritesExistingValue(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.True(t, s.Set(ctx, "k", payload{Name: "old"}))
	require.True(t, s.Set(ctx, "k", payload{Name: "new"}))

	var got payload
	require.True(t, s.Get(ctx, "k", &got))
	require.Equal(t, "new", got.Name)
}

func TestSet_UnserializableValue_ReturnsFalse(t *testing.T) {
	s, _ := newStore(t)
	assert.False(t, s.Set(context.Background(), "k", func() {}))
}

func TestRemove_ExistingAndAbsent(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.True(t, s.Set(ctx, "k", payload{}))
	require.True(t, s.Remove(ctx, "k"))

	var got payload
	require.False(t, s.Get(ctx, "k", &got))

	// Removing an absent key still succeeds.
	require.True(t, s.Remove(ctx, "k"))
}

func TestClear_RemovesEverything(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.True(t, s.Set(ctx, "a", payload{}))
	require.True(t, s.Set(ctx, "b", payload{}))
	require.True(t, s.Clear(ctx))

	var got payload
	assert.False(t, s.Get(ctx, "a", &got))
	assert.False(t, s.Get(ctx, "b", &got))
}

func TestStore_FailedMedium_ReportsFalseNotPanic(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()
	require.NoError(t, db.Close())

	var got payload
	assert.False(t, s.Get(ctx, "k", &got))
	assert.False(t, s.Set(ctx, "k", payload{}))
	assert.False(t, s.Remove(ctx, "k"))
	assert.False(t, s.Clear(ctx))
}

func TestOpen_MigratesAndWorks(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "edukit.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db, logging.NewDiscard())
	require.True(t, s.Set(ctx, "k", payload{Name: "persisted"}))

	var got payload
	require.True(t, s.Get(ctx, "k", &got))
	require.Equal(t, "persisted", got.Name)
}
