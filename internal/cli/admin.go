package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/edukit/edukit/internal/common"
	"github.com/edukit/edukit/internal/models"
)

// Users lists every account, including blocked ones.
func (a *App) Users(ctx context.Context) error {
	for _, u := range a.admin.ListUsers(ctx) {
		state := ""
		if u.IsAdmin {
			state += " [admin]"
		}
		if u.Blocked {
			state += " [blocked]"
		}
		printlnFn(fmt.Sprintf("%-6s %-20s %s%s", u.ID, u.Name, u.Email, state))
	}
	return nil
}

func (a *App) setBlocked(ctx context.Context, blocked bool) error {
	userID, err := getSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.admin.SetBlocked(ctx, userID, blocked); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such user:", userID)
			return nil
		}
		return err
	}
	printlnFn("Done.")
	return nil
}

// BlockUser prompts for a user id and blocks the account.
func (a *App) BlockUser(ctx context.Context) error {
	return a.setBlocked(ctx, true)
}

// UnblockUser prompts for a user id and unblocks the account.
func (a *App) UnblockUser(ctx context.Context) error {
	return a.setBlocked(ctx, false)
}

// DeleteUser removes an account and all of its enrollments.
func (a *App) DeleteUser(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.admin.DeleteUser(ctx, userID); err != nil {
		return err
	}
	printlnFn("User deleted.")
	return nil
}

// AddCourse prompts for the course fields and creates an unpublished draft.
func (a *App) AddCourse(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	typeText, err := getSimpleText(a.reader, "Type (free/locked/paid)", os.Stdout)
	if err != nil {
		return err
	}
	ctype := models.CourseType(typeText)
	switch ctype {
	case models.CourseTypeFree, models.CourseTypeLocked, models.CourseTypePaid:
	default:
		printlnFn("Unknown course type:", typeText)
		return nil
	}

	price := 0
	if ctype == models.CourseTypePaid {
		priceText, err := getSimpleText(a.reader, "Price (cents)", os.Stdout)
		if err != nil {
			return err
		}
		price, err = strconv.Atoi(priceText)
		if err != nil {
			printlnFn("Not a number:", priceText)
			return nil
		}
	}

	entryCode := ""
	if ctype == models.CourseTypeLocked {
		entryCode, err = getSimpleText(a.reader, "Entry code", os.Stdout)
		if err != nil {
			return err
		}
		if entryCode == "" {
			printlnFn("Locked courses need an entry code.")
			return nil
		}
	}

	course, err := a.admin.CreateCourse(ctx, title, description, ctype, price, entryCode)
	if err != nil {
		return err
	}
	printlnFn("Created draft course:", course.ID)
	return nil
}

// AddLesson prompts for a course id and the lesson fields and appends
// the lesson to that course.
func (a *App) AddLesson(ctx context.Context) error {
	courseID, err := getSimpleText(a.reader, "Course id", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Lesson title", os.Stdout)
	if err != nil {
		return err
	}
	ltype, err := getSimpleText(a.reader, "Lesson type (text/video)", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return err
	}

	lesson, err := a.admin.AddLesson(ctx, courseID, title, ltype, content)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such course:", courseID)
			return nil
		}
		return err
	}
	printlnFn("Added lesson:", lesson.ID)
	return nil
}

// EditCourse prompts for a course id and a new title.
func (a *App) EditCourse(ctx context.Context) error {
	courseID, err := getSimpleText(a.reader, "Course id", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "New title", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.admin.RenameCourse(ctx, courseID, title); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such course:", courseID)
			return nil
		}
		return err
	}
	printlnFn("Course updated.")
	return nil
}

// TogglePublish flips a course between draft and published.
func (a *App) TogglePublish(ctx context.Context) error {
	courseID, err := getSimpleText(a.reader, "Course id", os.Stdout)
	if err != nil {
		return err
	}
	course := a.findCourse(ctx, courseID)
	if course == nil {
		printlnFn("No such course:", courseID)
		return nil
	}
	if err := a.admin.SetPublished(ctx, courseID, !course.Published); err != nil {
		return err
	}
	if course.Published {
		printlnFn("Course unpublished.")
	} else {
		printlnFn("Course published.")
	}
	return nil
}

// DeleteCourse removes a course and all enrollments referencing it.
func (a *App) DeleteCourse(ctx context.Context) error {
	courseID, err := getSimpleText(a.reader, "Course id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.admin.DeleteCourse(ctx, courseID); err != nil {
		return err
	}
	printlnFn("Course deleted.")
	return nil
}

// Stats prints aggregate totals.
func (a *App) Stats(ctx context.Context) error {
	stats := a.catalog.AdminStats(ctx)
	printlnFn("Users:  ", stats.TotalUsers)
	printlnFn("Courses:", stats.TotalCourses)
	return nil
}

// Export writes the full dataset to the configured export file.
func (a *App) Export(ctx context.Context) error {
	if err := a.admin.ExportTo(ctx, a.config.ExportPath); err != nil {
		return err
	}
	printlnFn("Exported to:", a.config.ExportPath)
	return nil
}

// Reset wipes the store and reseeds the demo catalog after confirmation.
func (a *App) Reset(ctx context.Context) error {
	confirm, err := getSimpleText(a.reader, "This wipes all data. Type 'yes' to continue", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Cancelled.")
		return nil
	}
	if err := a.admin.Reset(ctx); err != nil {
		return err
	}
	printlnFn("Store reset to the demo catalog.")
	return nil
}
