package store

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Role is a user's capability class. The pipeline trusts the role handed
// to it; route-level gating happens in the HTTP adapter.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// Lesson is a unit of educational content. Immutable from the Q&A
// pipeline's perspective.
type Lesson struct {
	ID        int
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// previewLimit is the number of characters shown in a lesson preview.
const previewLimit = 200

// Preview returns the first 200 characters of the content, with an
// ellipsis suffix when truncated. Derived, never stored.
func (l *Lesson) Preview() string {
	if utf8.RuneCountInString(l.Content) <= previewLimit {
		return l.Content
	}
	runes := []rune(l.Content)
	return strings.TrimRight(string(runes[:previewLimit]), " ") + "..."
}

// User is a platform account as the pipeline sees it.
type User struct {
	ID        int
	Name      string
	Role      Role
	CreatedAt time.Time
}

// QARecord is a persisted (question, answer) pair tied to a lesson and a
// user. Records are append-only: no update operation exists.
type QARecord struct {
	ID           int
	LessonID     int
	UserID       int
	Question     string
	Answer       string
	Unanswerable bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
