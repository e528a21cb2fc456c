package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/edukit/edukit/internal/models"
)

func formatPrice(cents int) string {
	if cents == 0 {
		return "free"
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func courseLine(c models.Course) string {
	return fmt.Sprintf("%-6s %-30s %-7s %s", c.ID, c.Title, c.Type, formatPrice(c.Price))
}

// Courses lists the published catalog.
func (a *App) Courses(ctx context.Context) error {
	courses := a.catalog.ListPublished(ctx)
	if len(courses) == 0 {
		printlnFn("No courses yet.")
		return nil
	}
	for _, c := range courses {
		printlnFn(courseLine(c))
	}
	return nil
}

// Search prompts for a query and lists matching published courses. An
// empty query and a query with no matches are reported differently,
// mirroring the two distinct states of the search result.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}

	result := a.catalog.Search(ctx, query)
	switch {
	case result.EmptyQuery():
		printlnFn("Type something to search for.")
	case len(result.Courses) == 0:
		printlnFn("Nothing found for:", result.Query)
	default:
		for _, c := range result.Courses {
			printlnFn(courseLine(c))
		}
	}
	return nil
}

// MyCourses lists the current user's enrollments with progress.
func (a *App) MyCourses(ctx context.Context) error {
	u := a.auth.CurrentUser(ctx)
	if u == nil {
		return nil
	}

	enrolled := a.catalog.EnrolledCourses(ctx, u.ID)
	if len(enrolled) == 0 {
		printlnFn("You are not enrolled in any course.")
		return nil
	}
	for _, ec := range enrolled {
		p := a.enroll.ProgressFor(ec.Enrollment, ec.Course)
		printlnFn(fmt.Sprintf("%s  %d/%d lessons (%.0f%%)", courseLine(ec.Course), p.Completed, p.Total, p.Percent))
	}
	return nil
}
