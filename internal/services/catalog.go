package services

import (
	"context"
	"strings"

	"github.com/edukit/edukit/internal/models"
	"github.com/edukit/edukit/internal/repository"
)

// SearchResult carries the matches together with the query that
// produced them, so an empty query ("type to search") stays
// distinguishable from a query with zero matches.
type SearchResult struct {
	Query   string
	Courses []models.Course
}

// EmptyQuery reports whether the result represents the
// nothing-typed-yet state rather than a real search.
func (r SearchResult) EmptyQuery() bool {
	return r.Query == ""
}

// EnrolledCourse pairs an enrollment with its course for the
// my-courses view.
type EnrolledCourse struct {
	Course     models.Course
	Enrollment models.Enrollment
}

// Stats are the admin dashboard counters.
type Stats struct {
	TotalUsers   int
	TotalCourses int
}

// CatalogService provides the read-only derived views over the
// collections. Nothing here mutates state or caches results.
type CatalogService interface {
	ListPublished(ctx context.Context) []models.Course
	Search(ctx context.Context, query string) SearchResult
	EnrolledCourses(ctx context.Context, userID string) []EnrolledCourse
	AdminStats(ctx context.Context) Stats
}

type catalogService struct {
	repo *repository.Repository
}

// NewCatalogService constructs a CatalogService over the given
// repository.
func NewCatalogService(repo *repository.Repository) CatalogService {
	return &catalogService{repo: repo}
}

// ListPublished returns the published courses in collection order.
func (s *catalogService) ListPublished(ctx context.Context) []models.Course {
	var published []models.Course
	for _, c := range s.repo.Courses(ctx) {
		if c.Published {
			published = append(published, c)
		}
	}
	return published
}

// Search filters the published courses by case-insensitive substring
// match on title or description.
func (s *catalogService) Search(ctx context.Context, query string) SearchResult {
	result := SearchResult{Query: query}
	if query == "" {
		return result
	}

	q := strings.ToLower(query)
	result.Courses = []models.Course{}
	for _, c := range s.ListPublished(ctx) {
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			result.Courses = append(result.Courses, c)
		}
	}
	return result
}

// EnrolledCourses joins the user's enrollments against the course
// collection. Enrollments whose course has been deleted are skipped.
func (s *catalogService) EnrolledCourses(ctx context.Context, userID string) []EnrolledCourse {
	courses := s.repo.Courses(ctx)
	byID := make(map[string]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	var result []EnrolledCourse
	for _, e := range s.repo.Enrollments(ctx) {
		if e.UserID != userID {
			continue
		}
		c, ok := byID[e.CourseID]
		if !ok {
			continue
		}
		result = append(result, EnrolledCourse{Course: c, Enrollment: e})
	}
	return result
}

func (s *catalogService) AdminStats(ctx context.Context) Stats {
	return Stats{
		TotalUsers:   len(s.repo.Users(ctx)),
		TotalCourses: len(s.repo.Courses(ctx)),
	}
}
