// Package repository provides the typed view over the key-value store.
// It is the only code allowed to touch the raw storage keys; services
// and queries go through it.
//
// Every collection write is a whole-collection overwrite: mutations
// load the full list, change the member, and write the full list back.
// Two processes sharing the database file can therefore overwrite each
// other at collection granularity (last write wins). That is the
// storage contract of the datasets this application reads, not a bug
// to fix here.
package repository

import (
	"context"
	"fmt"

	"github.com/edukit/edukit/internal/common"
	"github.com/edukit/edukit/internal/models"
	"github.com/edukit/edukit/internal/storage"
)

// Raw storage keys. Shared with the original dataset layout.
const (
	keyUsers       = "ek_app_users"
	keyCourses     = "ek_app_courses"
	keyEnrollments = "ek_app_enrollments"
	keySession     = "ek_app_session"
	keySettings    = "ek_app_settings"
)

// Repository exposes the entity collections, the session pointer and
// the settings record. Reads degrade to empty on absent or unreadable
// data; writes surface failure as common.ErrStorageWrite.
type Repository struct {
	store storage.Store
}

func New(store storage.Store) *Repository {
	return &Repository{store: store}
}

// Users returns the full user collection, empty when absent.
func (r *Repository) Users(ctx context.Context) []models.User {
	var users []models.User
	r.store.Get(ctx, keyUsers, &users)
	return users
}

// SaveUsers overwrites the user collection.
func (r *Repository) SaveUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	if !r.store.Set(ctx, keyUsers, users) {
		return fmt.Errorf("save users: %w", common.ErrStorageWrite)
	}
	return nil
}

// Courses returns the full course collection, empty when absent.
func (r *Repository) Courses(ctx context.Context) []models.Course {
	var courses []models.Course
	r.store.Get(ctx, keyCourses, &courses)
	return courses
}

// SaveCourses overwrites the course collection.
func (r *Repository) SaveCourses(ctx context.Context, courses []models.Course) error {
	if courses == nil {
		courses = []models.Course{}
	}
	if !r.store.Set(ctx, keyCourses, courses) {
		return fmt.Errorf("save courses: %w", common.ErrStorageWrite)
	}
	return nil
}

// Enrollments returns the full enrollment collection, empty when absent.
func (r *Repository) Enrollments(ctx context.Context) []models.Enrollment {
	var enrollments []models.Enrollment
	r.store.Get(ctx, keyEnrollments, &enrollments)
	return enrollments
}

// SaveEnrollments overwrites the enrollment collection.
func (r *Repository) SaveEnrollments(ctx context.Context, enrollments []models.Enrollment) error {
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}
	if !r.store.Set(ctx, keyEnrollments, enrollments) {
		return fmt.Errorf("save enrollments: %w", common.ErrStorageWrite)
	}
	return nil
}

// AddUser appends a user to the collection.
func (r *Repository) AddUser(ctx context.Context, u models.User) error {
	return r.SaveUsers(ctx, append(r.Users(ctx), u))
}

// AddCourse appends a course to the collection.
func (r *Repository) AddCourse(ctx context.Context, c models.Course) error {
	return r.SaveCourses(ctx, append(r.Courses(ctx), c))
}

// AddEnrollment appends an enrollment to the collection.
func (r *Repository) AddEnrollment(ctx context.Context, e models.Enrollment) error {
	return r.SaveEnrollments(ctx, append(r.Enrollments(ctx), e))
}

// UpdateUser applies fn to the user with the given id and persists the
// collection. Returns common.ErrNotFound if no such user exists.
func (r *Repository) UpdateUser(ctx context.Context, id string, fn func(*models.User)) error {
	users := r.Users(ctx)
	for i := range users {
		if users[i].ID == id {
			fn(&users[i])
			return r.SaveUsers(ctx, users)
		}
	}
	return fmt.Errorf("user %s: %w", id, common.ErrNotFound)
}

// UpdateCourse applies fn to the course with the given id and persists
// the collection. Returns common.ErrNotFound if no such course exists.
func (r *Repository) UpdateCourse(ctx context.Context, id string, fn func(*models.Course)) error {
	courses := r.Courses(ctx)
	for i := range courses {
		if courses[i].ID == id {
			fn(&courses[i])
			return r.SaveCourses(ctx, courses)
		}
	}
	return fmt.Errorf("course %s: %w", id, common.ErrNotFound)
}

// UpdateEnrollment applies fn to the enrollment with the given id and
// persists the collection. Returns common.ErrNotFound if absent.
func (r *Repository) UpdateEnrollment(ctx context.Context, id string, fn func(*models.Enrollment)) error {
	enrollments := r.Enrollments(ctx)
	for i := range enrollments {
		if enrollments[i].ID == id {
			fn(&enrollments[i])
			return r.SaveEnrollments(ctx, enrollments)
		}
	}
	return fmt.Errorf("enrollment %s: %w", id, common.ErrNotFound)
}

// DeleteUser removes the user and, in the same operation, every
// enrollment belonging to them. Deleting an unknown id is a no-op.
func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	users := r.Users(ctx)
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if err := r.SaveUsers(ctx, kept); err != nil {
		return err
	}

	enrollments := r.Enrollments(ctx)
	keptEnr := enrollments[:0]
	for _, e := range enrollments {
		if e.UserID != id {
			keptEnr = append(keptEnr, e)
		}
	}
	return r.SaveEnrollments(ctx, keptEnr)
}

// DeleteCourse removes the course and every enrollment referencing it.
// Deleting an unknown id is a no-op.
func (r *Repository) DeleteCourse(ctx context.Context, id string) error {
	courses := r.Courses(ctx)
	kept := courses[:0]
	for _, c := range courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if err := r.SaveCourses(ctx, kept); err != nil {
		return err
	}

	enrollments := r.Enrollments(ctx)
	keptEnr := enrollments[:0]
	for _, e := range enrollments {
		if e.CourseID != id {
			keptEnr = append(keptEnr, e)
		}
	}
	return r.SaveEnrollments(ctx, keptEnr)
}

// Session returns the current session pointer. false means no one is
// logged in (or the record was unreadable, which amounts to the same).
func (r *Repository) Session(ctx context.Context) (models.Session, bool) {
	var s models.Session
	if !r.store.Get(ctx, keySession, &s) || s.CurrentUserID == "" {
		return models.Session{}, false
	}
	return s, true
}

// SaveSession replaces the session pointer.
func (r *Repository) SaveSession(ctx context.Context, s models.Session) error {
	if !r.store.Set(ctx, keySession, s) {
		return fmt.Errorf("save session: %w", common.ErrStorageWrite)
	}
	return nil
}

// ClearSession removes the session pointer. Idempotent.
func (r *Repository) ClearSession(ctx context.Context) error {
	if !r.store.Remove(ctx, keySession) {
		return fmt.Errorf("clear session: %w", common.ErrStorageWrite)
	}
	return nil
}

// Settings returns the settings record, falling back to defaults when
// none has been stored.
func (r *Repository) Settings(ctx context.Context) models.Settings {
	s := models.DefaultSettings()
	r.store.Get(ctx, keySettings, &s)
	return s
}

// SaveSettings replaces the settings record.
func (r *Repository) SaveSettings(ctx context.Context, s models.Settings) error {
	if !r.store.Set(ctx, keySettings, s) {
		return fmt.Errorf("save settings: %w", common.ErrStorageWrite)
	}
	return nil
}

// Export assembles the full-dataset snapshot: all collections plus
// settings, never the session pointer. Collections are always present
// in the snapshot, as empty arrays when unset.
func (r *Repository) Export(ctx context.Context) models.Snapshot {
	snap := models.Snapshot{
		Users:       r.Users(ctx),
		Courses:     r.Courses(ctx),
		Enrollments: r.Enrollments(ctx),
		Settings:    r.Settings(ctx),
	}
	if snap.Users == nil {
		snap.Users = []models.User{}
	}
	if snap.Courses == nil {
		snap.Courses = []models.Course{}
	}
	if snap.Enrollments == nil {
		snap.Enrollments = []models.Enrollment{}
	}
	return snap
}

// Seed writes a snapshot into the store, one record per key. The
// session pointer is left untouched.
func (r *Repository) Seed(ctx context.Context, snap models.Snapshot) error {
	if err := r.SaveUsers(ctx, snap.Users); err != nil {
		return err
	}
	if err := r.SaveCourses(ctx, snap.Courses); err != nil {
		return err
	}
	if err := r.SaveEnrollments(ctx, snap.Enrollments); err != nil {
		return err
	}
	return r.SaveSettings(ctx, snap.Settings)
}

// Clear wipes the whole store, session included.
func (r *Repository) Clear(ctx context.Context) error {
	if !r.store.Clear(ctx) {
		return fmt.Errorf("clear store: %w", common.ErrStorageWrite)
	}
	return nil
}
