// Package models defines the persisted domain entities of the course
// catalog: users, courses with their lessons, enrollments, the session
// pointer, and installation-wide settings.
//
// The JSON field names are the storage contract. They must not change:
// datasets written by earlier versions of the application are read back
// with these exact keys.
package models

import "time"

// User is a registered account. Email is unique across the user
// collection (case-sensitive, enforced at signup). PasswordHash is the
// lowercase hex SHA-256 digest of the password.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	IsAdmin      bool      `json:"isAdmin"`
	Blocked      bool      `json:"blocked"`
	Avatar       *string   `json:"avatar"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"createdAt"`
}
