package domain

import "time"

// CalendarEvent is a company-wide calendar entry.
type CalendarEvent struct {
	ID          string
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	AllDay      bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
