package models

import "time"

// Enrollment links a user to a course. Progress maps lesson ids to
// completion; lessons absent from the map count as not completed.
//
// Nothing prevents several enrollments for the same (user, course)
// pair; each keeps an independent progress map.
type Enrollment struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	CourseID   string          `json:"courseId"`
	Purchased  bool            `json:"purchased"`
	EnrolledAt time.Time       `json:"enrolledAt"`
	Progress   map[string]bool `json:"progress"`
}
