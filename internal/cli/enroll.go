package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/edukit/edukit/internal/common"
	"github.com/edukit/edukit/internal/models"
)

// Enroll prompts for a course id and enrolls the current user for free.
// Paid and locked courses are redirected to buy/redeem instead.
func (a *App) Enroll(ctx context.Context) error {
	u := a.auth.CurrentUser(ctx)
	if u == nil {
		return nil
	}

	courseID, err := getSimpleText(a.reader, "Course id", os.Stdout)
	if err != nil {
		return err
	}

	course := a.findCourse(ctx, courseID)
	if course == nil {
		printlnFn("No such course:", courseID)
		return nil
	}
	switch course.Type {
	case models.CourseTypePaid:
		printlnFn("This course is paid, use 'buy'.")
		return nil
	case models.CourseTypeLocked:
		printlnFn("This course needs an entry code, use 'redeem'.")
		return nil
	}
	if a.enroll.IsEnrolled(ctx, u.ID, courseID) {
		printlnFn("Already enrolled.")
		return nil
	}

	if _, err := a.enroll.Enroll(ctx, courseID, u); err != nil {
		return err
	}
	printlnFn("Enrolled in:", course.Title)
	return nil
}

// Buy prompts for a course id and records a purchase for the current user.
func (a *App) Buy(ctx context.Context) error {
	u := a.auth.CurrentUser(ctx)
	if u == nil {
		return nil
	}

	courseID, err := getSimpleText(a.reader, "Course id", os.Stdout)
	if err != nil {
		return err
	}

	course := a.findCourse(ctx, courseID)
	if course == nil {
		printlnFn("No such course:", courseID)
		return nil
	}
	if course.Type != models.CourseTypePaid {
		printlnFn("This course is not paid, use 'enroll'.")
		return nil
	}
	if a.enroll.IsEnrolled(ctx, u.ID, courseID) {
		printlnFn("Already enrolled.")
		return nil
	}

	if _, err := a.enroll.Purchase(ctx, courseID, u); err != nil {
		return err
	}
	printlnFn("Purchased:", course.Title, formatPrice(course.Price))
	return nil
}

// Redeem prompts for a course id and entry code and unlocks the course.
// The code comparison is exact, case included.
func (a *App) Redeem(ctx context.Context) error {
	u := a.auth.CurrentUser(ctx)
	if u == nil {
		return nil
	}

	courseID, err := getSimpleText(a.reader, "Course id", os.Stdout)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Entry code", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.enroll.RedeemCode(ctx, courseID, code, u); err != nil {
		if errors.Is(err, common.ErrInvalidCode) {
			printlnFn("Invalid code.")
			return nil
		}
		return err
	}
	printlnFn("Course unlocked.")
	return nil
}

// CompleteLesson prompts for a course and lesson and toggles its done flag
// on the current user's enrollment in that course.
func (a *App) CompleteLesson(ctx context.Context) error {
	u := a.auth.CurrentUser(ctx)
	if u == nil {
		return nil
	}

	courseID, err := getSimpleText(a.reader, "Course id", os.Stdout)
	if err != nil {
		return err
	}

	var enrollment *models.Enrollment
	for _, e := range a.repo.Enrollments(ctx) {
		if e.UserID == u.ID && e.CourseID == courseID {
			enrollment = &e
			break
		}
	}
	if enrollment == nil {
		printlnFn("You are not enrolled in this course.")
		return nil
	}

	lessonID, err := getSimpleText(a.reader, "Lesson id", os.Stdout)
	if err != nil {
		return err
	}
	doneText, err := getSimpleText(a.reader, "Done? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	done := strings.EqualFold(doneText, "y") || strings.EqualFold(doneText, "yes")

	if err := a.enroll.SetLessonProgress(ctx, enrollment.ID, lessonID, done); err != nil {
		return err
	}
	printlnFn("Progress saved.")
	return nil
}

func (a *App) findCourse(ctx context.Context, id string) *models.Course {
	for _, c := range a.repo.Courses(ctx) {
		if c.ID == id {
			return &c
		}
	}
	return nil
}
