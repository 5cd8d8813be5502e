package dto

import "time"

// EmployeeRequest payload for employee create/update.
type EmployeeRequest struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	ManagerRef string    `json:"manager_ref"`
	Status     string    `json:"status"`
	StartDate  time.Time `json:"start_date"`
}
