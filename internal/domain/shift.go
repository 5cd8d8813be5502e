package domain

import "time"

// Shift is a scheduled block of work for one employee.
type Shift struct {
	ID         string
	EmployeeID string
	Position   string
	StartsAt   time.Time
	EndsAt     time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Overlaps reports whether two shifts share any time.
func (s Shift) Overlaps(other Shift) bool {
	return s.StartsAt.Before(other.EndsAt) && other.StartsAt.Before(s.EndsAt)
}
