package dto

import "time"

// LeaveCreateRequest payload for PTO submissions.
type LeaveCreateRequest struct {
	ManagerRef string    `json:"manager_ref"`
	Type       string    `json:"type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
}

// LeaveDecisionRequest payload for approvals/denials.
type LeaveDecisionRequest struct {
	Approve bool `json:"approve"`
}
