package models

import "github.com/google/uuid"

// Entity ids are random UUIDs behind a short per-entity prefix, so a
// raw dump stays readable while collisions stay negligible.

func NewUserID() string       { return "u_" + uuid.NewString() }
func NewCourseID() string     { return "c_" + uuid.NewString() }
func NewEnrollmentID() string { return "e_" + uuid.NewString() }
func NewLessonID() string     { return "l_" + uuid.NewString() }
