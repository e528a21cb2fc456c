package models

// Session is the single local "logged in" pointer. It carries no token
// and never expires; logout simply removes the record.
type Session struct {
	CurrentUserID string `json:"currentUserId"`
}
