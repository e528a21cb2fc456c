// Package seed builds the demo dataset loaded on first run, when the
// store holds no users yet.
package seed

import (
	"time"

	"github.com/edukit/edukit/internal/cryptox"
	"github.com/edukit/edukit/internal/models"
)

func strptr(s string) *string { return &s }

// Demo returns the demo snapshot: one admin and three regular users,
// five published courses covering all three course types, and two
// enrollments with partial and complete progress.
//
// Demo credentials: admin@edukit.com/admin123, john@example.com and
// jane@example.com with password123, r@e/rohit123.
func Demo() models.Snapshot {
	now := time.Now().UTC()

	users := []models.User{
		{
			ID:           "u_1",
			Name:         "Admin User",
			Email:        "admin@edukit.com",
			PasswordHash: cryptox.HashPassword("admin123"),
			IsAdmin:      true,
			Bio:          "System Administrator",
			CreatedAt:    now,
		},
		{
			ID:           "u_2",
			Name:         "John Doe",
			Email:        "john@example.com",
			PasswordHash: cryptox.HashPassword("password123"),
			Bio:          "Aspiring developer",
			CreatedAt:    now,
		},
		{
			ID:           "u_3",
			Name:         "Jane Smith",
			Email:        "jane@example.com",
			PasswordHash: cryptox.HashPassword("password123"),
			Bio:          "Design enthusiast",
			CreatedAt:    now,
		},
		{
			ID:           "u_4",
			Name:         "Rohit Kumar",
			Email:        "r@e",
			PasswordHash: cryptox.HashPassword("rohit123"),
			Bio:          "Co-Founder",
			CreatedAt:    now,
		},
	}

	courses := []models.Course{
		{
			ID:          "c_1",
			Title:       "JavaScript Fundamentals",
			Slug:        "javascript-fundamentals",
			Description: "Learn the basics of JavaScript programming language from scratch.",
			Price:       0,
			Type:        models.CourseTypeFree,
			Lessons: []models.Lesson{
				{ID: "l_1", Title: "Introduction to JavaScript", Type: "text", Content: "Welcome to JavaScript!"},
				{ID: "l_2", Title: "Variables and Data Types", Type: "text", Content: "Learn about variables..."},
			},
			CreatedAt: now,
			Published: true,
		},
		{
			ID:          "c_2",
			Title:       "Advanced React Patterns",
			Slug:        "advanced-react-patterns",
			Description: "Master advanced React patterns and best practices.",
			Price:       2999,
			Type:        models.CourseTypePaid,
			Lessons: []models.Lesson{
				{ID: "l_3", Title: "Higher Order Components", Type: "text", Content: "Learn about HOCs..."},
				{ID: "l_4", Title: "Render Props Pattern", Type: "text", Content: "Understanding render props..."},
			},
			CreatedAt: now,
			Published: true,
		},
		{
			ID:          "c_3",
			Title:       "UI/UX Design Principles",
			Slug:        "ui-ux-design-principles",
			Description: "Learn the fundamental principles of user interface and user experience design.",
			Price:       0,
			Type:        models.CourseTypeLocked,
			EntryCode:   strptr("free"),
			Lessons: []models.Lesson{
				{ID: "l_5", Title: "Design Thinking Process", Type: "text", Content: "Understanding design thinking..."},
				{ID: "l_6", Title: "Color Theory", Type: "text", Content: "Learn about colors..."},
			},
			CreatedAt: now,
			Published: true,
		},
		{
			ID:          "c_4",
			Title:       "Python for Beginners",
			Slug:        "python-for-beginners",
			Description: "Start your programming journey with Python.",
			Price:       1999,
			Type:        models.CourseTypePaid,
			Lessons: []models.Lesson{
				{ID: "l_7", Title: "Python Basics", Type: "text", Content: "Introduction to Python..."},
				{ID: "l_8", Title: "Control Structures", Type: "text", Content: "If statements and loops..."},
			},
			CreatedAt: now,
			Published: true,
		},
		{
			ID:          "c_5",
			Title:       "Web Development Bootcamp",
			Slug:        "web-development-bootcamp",
			Description: "Complete web development course covering HTML, CSS, and JavaScript.",
			Price:       0,
			Type:        models.CourseTypeFree,
			Lessons: []models.Lesson{
				{ID: "l_9", Title: "HTML Basics", Type: "text", Content: "Learn HTML structure..."},
				{ID: "l_10", Title: "CSS Styling", Type: "text", Content: "Style your web pages..."},
			},
			CreatedAt: now,
			Published: true,
		},
	}

	enrollments := []models.Enrollment{
		{
			ID:         "e_1",
			UserID:     "u_2",
			CourseID:   "c_1",
			EnrolledAt: now,
			Progress:   map[string]bool{"l_1": true, "l_2": false},
		},
		{
			ID:         "e_2",
			UserID:     "u_3",
			CourseID:   "c_5",
			EnrolledAt: now,
			Progress:   map[string]bool{"l_9": true, "l_10": true},
		},
	}

	return models.Snapshot{
		Users:       users,
		Courses:     courses,
		Enrollments: enrollments,
		Settings:    models.DefaultSettings(),
	}
}
