package domain

import "time"

// EmployeeStatus enumerates employment states.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusOnLeave  EmployeeStatus = "ON_LEAVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
)

// Employee models a person on the payroll.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Title      string
	Department string
	// ManagerRef holds the manager's email or display name as entered by HR.
	ManagerRef string
	Status     EmployeeStatus
	StartDate  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
