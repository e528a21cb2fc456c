// Package common defines shared sentinel errors used across the
// repository and service layers. Callers should use errors.Is to match
// these values; services never return a generic error for a condition
// the presentation layer needs to distinguish.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrStorageWrite = errors.New("storage write failed")

	// Authentication errors. ErrUserNotFound and ErrInvalidCredentials
	// deliberately share one user-facing message: which of the two
	// happened is not revealed to the person at the keyboard, only to
	// the code that matches with errors.Is.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("invalid email or password")
	ErrAccountBlocked     = errors.New("account has been blocked")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Enrollment errors.
	ErrInvalidCode = errors.New("invalid course code")

	// Course management errors.
	ErrEntryCodeRequired = errors.New("locked course requires an entry code")
)
