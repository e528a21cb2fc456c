package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/edukit/edukit/internal/common"
	"github.com/edukit/edukit/internal/models"
	"github.com/edukit/edukit/internal/repository"
	"github.com/edukit/edukit/internal/seed"
)

// AdminService groups the management operations: user moderation, course
// editing, data export and resetting the store to the demo dataset.
// Callers are expected to gate access with AuthService.IsAdmin; the
// service itself performs no authorization.
type AdminService interface {
	ListUsers(ctx context.Context) []models.User
	SetBlocked(ctx context.Context, userID string, blocked bool) error
	DeleteUser(ctx context.Context, userID string) error
	CreateCourse(ctx context.Context, title, description string, ctype models.CourseType, price int, entryCode string) (*models.Course, error)
	AddLesson(ctx context.Context, courseID, title, ltype, content string) (*models.Lesson, error)
	RenameCourse(ctx context.Context, courseID, title string) error
	SetPublished(ctx context.Context, courseID string, published bool) error
	DeleteCourse(ctx context.Context, courseID string) error
	ExportTo(ctx context.Context, path string) error
	Reset(ctx context.Context) error
}

type adminService struct {
	repo *repository.Repository
}

// NewAdminService constructs an AdminService over the given repository.
func NewAdminService(repo *repository.Repository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) ListUsers(ctx context.Context) []models.User {
	return s.repo.Users(ctx)
}

func (s *adminService) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	return s.repo.UpdateUser(ctx, userID, func(u *models.User) {
		u.Blocked = blocked
	})
}

func (s *adminService) DeleteUser(ctx context.Context, userID string) error {
	return s.repo.DeleteUser(ctx, userID)
}

// CreateCourse creates an unpublished draft. A locked course must carry
// a non-empty entry code, so that it stays redeemable; for the other
// types the code is discarded and the stored entryCode is null.
func (s *adminService) CreateCourse(ctx context.Context, title, description string, ctype models.CourseType, price int, entryCode string) (*models.Course, error) {
	var code *string
	if ctype == models.CourseTypeLocked {
		if entryCode == "" {
			return nil, common.ErrEntryCodeRequired
		}
		code = &entryCode
	}

	course := models.Course{
		ID:          models.NewCourseID(),
		Title:       title,
		Slug:        slugify(title),
		Description: description,
		Type:        ctype,
		Price:       price,
		EntryCode:   code,
		Lessons:     []models.Lesson{},
		CreatedAt:   time.Now().UTC(),
		Published:   false,
	}
	if err := s.repo.AddCourse(ctx, course); err != nil {
		return nil, err
	}
	return &course, nil
}

// slugify lowercases the title and collapses runs of non-alphanumeric
// characters into single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// AddLesson appends a lesson to the course's lesson list. Unknown
// course ids report common.ErrNotFound.
func (s *adminService) AddLesson(ctx context.Context, courseID, title, ltype, content string) (*models.Lesson, error) {
	lesson := models.Lesson{
		ID:      models.NewLessonID(),
		Title:   title,
		Type:    ltype,
		Content: content,
	}
	err := s.repo.UpdateCourse(ctx, courseID, func(c *models.Course) {
		c.Lessons = append(c.Lessons, lesson)
	})
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *adminService) RenameCourse(ctx context.Context, courseID, title string) error {
	return s.repo.UpdateCourse(ctx, courseID, func(c *models.Course) {
		c.Title = title
	})
}

func (s *adminService) SetPublished(ctx context.Context, courseID string, published bool) error {
	return s.repo.UpdateCourse(ctx, courseID, func(c *models.Course) {
		c.Published = published
	})
}

func (s *adminService) DeleteCourse(ctx context.Context, courseID string) error {
	return s.repo.DeleteCourse(ctx, courseID)
}

// ExportTo writes the full dataset as pretty-printed JSON to path.
// The snapshot never includes the session.
func (s *adminService) ExportTo(ctx context.Context, path string) error {
	snap := s.repo.Export(ctx)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Reset clears the store and reseeds it with the demo dataset.
func (s *adminService) Reset(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	return s.repo.Seed(ctx, seed.Demo())
}
