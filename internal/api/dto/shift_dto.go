package dto

import "time"

// ShiftRequest payload for shift create/update.
type ShiftRequest struct {
	EmployeeID string    `json:"employee_id"`
	Position   string    `json:"position"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	Notes      string    `json:"notes"`
}
