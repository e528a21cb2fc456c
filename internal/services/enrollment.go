package services

import (
	"context"
	"time"

	"github.com/edukit/edukit/internal/common"
	"github.com/edukit/edukit/internal/models"
	"github.com/edukit/edukit/internal/repository"
)

// Progress aggregates lesson completion for one enrollment.
type Progress struct {
	Completed int
	Total     int
	Percent   float64
}

// EnrollmentService creates enrollments and tracks lesson progress.
//
// Enroll and Purchase append unconditionally: whether the course
// exists, is published, or the user is already enrolled is the
// presentation layer's call. A user can hold several enrollments in
// the same course, each with its own progress.
type EnrollmentService interface {
	Enroll(ctx context.Context, courseID string, user *models.User) (*models.Enrollment, error)
	Purchase(ctx context.Context, courseID string, user *models.User) (*models.Enrollment, error)
	RedeemCode(ctx context.Context, courseID, code string, user *models.User) (*models.Enrollment, error)
	IsEnrolled(ctx context.Context, userID, courseID string) bool
	SetLessonProgress(ctx context.Context, enrollmentID, lessonID string, done bool) error
	ProgressFor(e models.Enrollment, c models.Course) Progress
}

type enrollmentService struct {
	repo *repository.Repository
}

// NewEnrollmentService constructs an EnrollmentService over the given
// repository.
func NewEnrollmentService(repo *repository.Repository) EnrollmentService {
	return &enrollmentService{repo: repo}
}

func (s *enrollmentService) create(ctx context.Context, courseID, userID string, purchased bool) (*models.Enrollment, error) {
	e := models.Enrollment{
		ID:         models.NewEnrollmentID(),
		UserID:     userID,
		CourseID:   courseID,
		Purchased:  purchased,
		EnrolledAt: time.Now().UTC(),
		Progress:   map[string]bool{},
	}
	if err := s.repo.AddEnrollment(ctx, e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *enrollmentService) Enroll(ctx context.Context, courseID string, user *models.User) (*models.Enrollment, error) {
	return s.create(ctx, courseID, user.ID, false)
}

// Purchase records a bought enrollment. There is no payment flow; the
// purchased flag is the entire transaction.
func (s *enrollmentService) Purchase(ctx context.Context, courseID string, user *models.User) (*models.Enrollment, error) {
	return s.create(ctx, courseID, user.ID, true)
}

// RedeemCode unlocks a code-gated course. The code must equal the
// course's entry code exactly, case included; any mismatch, a course
// without an entry code, and an unknown course id all report
// common.ErrInvalidCode.
func (s *enrollmentService) RedeemCode(ctx context.Context, courseID, code string, user *models.User) (*models.Enrollment, error) {
	for _, c := range s.repo.Courses(ctx) {
		if c.ID == courseID && c.EntryCode != nil && *c.EntryCode == code {
			return s.create(ctx, courseID, user.ID, false)
		}
	}
	return nil, common.ErrInvalidCode
}

func (s *enrollmentService) IsEnrolled(ctx context.Context, userID, courseID string) bool {
	for _, e := range s.repo.Enrollments(ctx) {
		if e.UserID == userID && e.CourseID == courseID {
			return true
		}
	}
	return false
}

// SetLessonProgress marks one lesson of one enrollment as completed or
// not. Unknown enrollment ids report common.ErrNotFound.
func (s *enrollmentService) SetLessonProgress(ctx context.Context, enrollmentID, lessonID string, done bool) error {
	return s.repo.UpdateEnrollment(ctx, enrollmentID, func(e *models.Enrollment) {
		if e.Progress == nil {
			e.Progress = map[string]bool{}
		}
		e.Progress[lessonID] = done
	})
}

// ProgressFor counts the true values in the enrollment's progress map
// against the course's lesson count. Percent is 0 for a course with no
// lessons.
func (s *enrollmentService) ProgressFor(e models.Enrollment, c models.Course) Progress {
	completed := 0
	for _, done := range e.Progress {
		if done {
			completed++
		}
	}
	p := Progress{Completed: completed, Total: len(c.Lessons)}
	if p.Total > 0 {
		p.Percent = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}
