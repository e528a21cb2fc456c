package models

// Snapshot is the full-dataset export shape: every collection plus the
// settings record, but not the session pointer.
type Snapshot struct {
	Users       []User       `json:"users"`
	Courses     []Course     `json:"courses"`
	Enrollments []Enrollment `json:"enrollments"`
	Settings    Settings     `json:"settings"`
}
