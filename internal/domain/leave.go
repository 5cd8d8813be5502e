package domain

import "time"

// LeaveType enumerates categories of time off.
type LeaveType string

const (
	LeaveTypeVacation LeaveType = "VACATION"
	LeaveTypeSick     LeaveType = "SICK"
	LeaveTypePersonal LeaveType = "PERSONAL"
	LeaveTypeUnpaid   LeaveType = "UNPAID"
)

// LeaveStatus enumerates decision states for a request.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusDenied   LeaveStatus = "DENIED"
)

// LeaveRequest is a PTO request awaiting or carrying a decision.
// EmployeeRef and ManagerRef hold an email address or a display name;
// ownership checks compare them against the caller in both forms.
type LeaveRequest struct {
	ID          string
	EmployeeRef string
	ManagerRef  string
	Type        LeaveType
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	Status      LeaveStatus
	DecidedBy   *string
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
