package models

import "time"

// CourseType classifies how a course is unlocked.
type CourseType string

const (
	// CourseTypeFree courses are enrolled into directly.
	CourseTypeFree CourseType = "free"
	// CourseTypeLocked courses require the matching entry code.
	CourseTypeLocked CourseType = "locked"
	// CourseTypePaid courses are unlocked by purchase.
	CourseTypePaid CourseType = "paid"
)

// Course is a catalog entry. EntryCode is non-nil only for locked
// courses. Price is in the smallest currency unit. Only published
// courses appear in catalog listings.
type Course struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Thumbnail   *string    `json:"thumbnail"`
	Description string     `json:"description"`
	Price       int        `json:"price"`
	Type        CourseType `json:"type"`
	EntryCode   *string    `json:"entryCode"`
	Lessons     []Lesson   `json:"lessons"`
	CreatedAt   time.Time  `json:"createdAt"`
	Published   bool       `json:"published"`
}

// Lesson is owned by its course; its id is unique within that course
// and keys the enrollment progress map.
type Lesson struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
}
