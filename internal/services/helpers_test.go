package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edukit/edukit/internal/cryptox"
	"github.com/edukit/edukit/internal/logging"
	"github.com/edukit/edukit/internal/models"
	"github.com/edukit/edukit/internal/repository"
	"github.com/edukit/edukit/internal/storage"

	_ "modernc.org/sqlite"
)

func newTestRepo(t *testing.T) *repository.Repository {
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

	return repository.New(storage.NewSQLiteStore(db, logging.NewDiscard()))
}

func seedUser(t *testing.T, repo *repository.Repository, id, email, password string) models.User {
	t.Helper()
	u := models.User{
		ID:           id,
		Name:         "User " + id,
		Email:        email,
		PasswordHash: cryptox.HashPassword(password),
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.AddUser(context.Background(), u))
	return u
}

func seedCourse(t *testing.T, repo *repository.Repository, c models.Course) models.Course {
	t.Helper()
	require.NoError(t, repo.AddCourse(context.Background(), c))
	return c
}

func freeCourse(id string, lessons int) models.Course {
	c := models.Course{
		ID:        id,
		Title:     "Course " + id,
		Type:      models.CourseTypeFree,
		CreatedAt: time.Now().UTC(),
		Published: true,
	}
	for i := 0; i < lessons; i++ {
		c.Lessons = append(c.Lessons, models.Lesson{
			ID:    id + "_l_" + string(rune('a'+i)),
			Title: "Lesson", Type: "text", Content: "...",
		})
	}
	return c
}
