package domain

import "time"

// Announcement is a broadcast message shown on the dashboard.
type Announcement struct {
	ID          string
	Title       string
	Body        string
	AuthorName  string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Published reports whether the announcement is visible.
func (a Announcement) Published() bool {
	return a.PublishedAt != nil
}
