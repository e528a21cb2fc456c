package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edukit/internal/common"
	"github.com/edukit/edukit/internal/logging"
	"github.com/edukit/edukit/internal/models"
	"github.com/edukit/edukit/internal/storage"

	_ "modernc.org/sqlite"
)

func newRepo(t *testing.T) *Repository {
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

	return New(storage.NewSQLiteStore(db, logging.NewDiscard()))
}

func user(id, email string) models.User {
	return models.User{ID: id, Name: "Name " + id, Email: email, CreatedAt: time.Now().UTC()}
}

func enrollment(id, userID, courseID string) models.Enrollment {
	return models.Enrollment{
		ID: id, UserID: userID, CourseID: courseID,
		EnrolledAt: time.Now().UTC(), Progress: map[string]bool{},
	}
}

func TestUsers_AbsentCollectionIsEmpty(t *testing.T) {
	r := newRepo(t)
	require.Empty(t, r.Users(context.Background()))
}

func TestSaveUsers_RoundTrip(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	in := []models.User{user("u_1", "a@example.com"), user("u_2", "b@example.com")}
	require.NoError(t, r.SaveUsers(ctx, in))

	out := r.Users(ctx)
	require.Len(t, out, 2)
	assert.Equal(t, "a@example.com", out[0].Email)
	assert.Equal(t, "b@example.com", out[1].Email)
}

func TestAddUser_AppendsPreservingOrder(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.AddUser(ctx, user("u_1", "a@example.com")))
	require.NoError(t, r.AddUser(ctx, user("u_2", "b@example.com")))

	out := r.Users(ctx)
	require.Equal(t, []string{"u_1", "u_2"}, []string{out[0].ID, out[1].ID})
}

func TestUpdateUser_MutatesSingleRecord(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SaveUsers(ctx, []models.User{user("u_1", "a@e"), user("u_2", "b@e")}))
	require.NoError(t, r.UpdateUser(ctx, "u_2", func(u *models.User) { u.Blocked = true }))

	out := r.Users(ctx)
	assert.False(t, out[0].Blocked)
	assert.True(t, out[1].Blocked)
}

func TestUpdateUser_UnknownID(t *testing.T) {
	r := newRepo(t)
	err := r.UpdateUser(context.Background(), "nope", func(u *models.User) {})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteUser_CascadesExactly(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SaveUsers(ctx, []models.User{user("u_1", "a@e"), user("u_2", "b@e")}))
	require.NoError(t, r.SaveEnrollments(ctx, []models.Enrollment{
		enrollment("e_1", "u_1", "c_1"),
		enrollment("e_2", "u_2", "c_1"),
		enrollment("e_3", "u_1", "c_2"),
	}))

	require.NoError(t, r.DeleteUser(ctx, "u_1"))

	users := r.Users(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "u_2", users[0].ID)

	enrollments := r.Enrollments(ctx)
	require.Len(t, enrollments, 1)
	assert.Equal(t, "e_2", enrollments[0].ID)
}

func TestDeleteCourse_CascadesExactly(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SaveCourses(ctx, []models.Course{
		{ID: "c_1", Title: "One", Type: models.CourseTypeFree},
		{ID: "c_2", Title: "Two", Type: models.CourseTypeFree},
	}))
	require.NoError(t, r.SaveEnrollments(ctx, []models.Enrollment{
		enrollment("e_1", "u_1", "c_1"),
		enrollment("e_2", "u_1", "c_2"),
	}))

	require.NoError(t, r.DeleteCourse(ctx, "c_1"))

	courses := r.Courses(ctx)
	require.Len(t, courses, 1)
	assert.Equal(t, "c_2", courses[0].ID)

	enrollments := r.Enrollments(ctx)
	require.Len(t, enrollments, 1)
	assert.Equal(t, "e_2", enrollments[0].ID)
}

func TestDeleteUser_UnknownIDIsNoOp(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SaveUsers(ctx, []models.User{user("u_1", "a@e")}))
	require.NoError(t, r.DeleteUser(ctx, "ghost"))
	require.Len(t, r.Users(ctx), 1)
}

func TestSession_Lifecycle(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	_, ok := r.Session(ctx)
	require.False(t, ok)

	require.NoError(t, r.SaveSession(ctx, models.Session{CurrentUserID: "u_1"}))
	s, ok := r.Session(ctx)
	require.True(t, ok)
	require.Equal(t, "u_1", s.CurrentUserID)

	require.NoError(t, r.ClearSession(ctx))
	_, ok = r.Session(ctx)
	require.False(t, ok)

	// Clearing with no session present is still fine.
	require.NoError(t, r.ClearSession(ctx))
}

func TestSettings_DefaultsWhenUnset(t *testing.T) {
	r := newRepo(t)
	s := r.Settings(context.Background())
	assert.True(t, s.DisableZoom)
	assert.Equal(t, models.ThemeLight, s.Theme)
}

func TestSettings_RoundTrip(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SaveSettings(ctx, models.Settings{DisableZoom: false, Theme: models.ThemeDark}))
	s := r.Settings(ctx)
	assert.False(t, s.DisableZoom)
	assert.Equal(t, models.ThemeDark, s.Theme)
}

func TestExport_EmptyStoreYieldsEmptyCollections(t *testing.T) {
	r := newRepo(t)
	snap := r.Export(context.Background())
	assert.NotNil(t, snap.Users)
	assert.NotNil(t, snap.Courses)
	assert.NotNil(t, snap.Enrollments)
	assert.Empty(t, snap.Users)
}

func TestSeed_WritesAllRecordsButNotSession(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SaveSession(ctx, models.Session{CurrentUserID: "u_keep"}))

	snap := models.Snapshot{
		Users:       []models.User{user("u_1", "a@e")},
		Courses:     []models.Course{{ID: "c_1", Type: models.CourseTypeFree}},
		Enrollments: []models.Enrollment{enrollment("e_1", "u_1", "c_1")},
		Settings:    models.Settings{Theme: models.ThemeDark},
	}
	require.NoError(t, r.Seed(ctx, snap))

	require.Len(t, r.Users(ctx), 1)
	require.Len(t, r.Courses(ctx), 1)
	require.Len(t, r.Enrollments(ctx), 1)
	require.Equal(t, models.ThemeDark, r.Settings(ctx).Theme)

	s, ok := r.Session(ctx)
	require.True(t, ok)
	require.Equal(t, "u_keep", s.CurrentUserID)
}
