package events

import (
	"time"

	"github.com/spec-kit/hr-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeaveRequested        EventType = "leave_requested"
	EventLeaveDecided          EventType = "leave_decided"
	EventApplicantStageChanged EventType = "applicant_stage_changed"
	EventAnnouncementPublished EventType = "announcement_published"
)

// Actor encapsulates who triggered an event.
type Actor struct {
	UserID string      `json:"user_id,omitempty"`
	Email  string      `json:"email,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LeaveRequestedPayload payload.
type LeaveRequestedPayload struct {
	EmployeeRef string           `json:"employee_ref"`
	ManagerRef  string           `json:"manager_ref"`
	Type        domain.LeaveType `json:"type"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
}

// LeaveDecidedPayload payload.
type LeaveDecidedPayload struct {
	EmployeeRef string             `json:"employee_ref"`
	Status      domain.LeaveStatus `json:"status"`
	DecidedBy   string             `json:"decided_by"`
}

// ApplicantStageChangedPayload payload.
type ApplicantStageChangedPayload struct {
	ApplicantName string                `json:"applicant_name"`
	Position      string                `json:"position"`
	OldStage      domain.ApplicantStage `json:"old_stage"`
	NewStage      domain.ApplicantStage `json:"new_stage"`
}

// AnnouncementPublishedPayload payload.
type AnnouncementPublishedPayload struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}
