package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// leaveDeciderRoles may decide any request without an ownership check.
var leaveDeciderRoles = auth.Roles(domain.RoleAdmin, domain.RoleHR)

// LeaveService coordinates PTO workflows.
type LeaveService struct {
	leaves     repository.LeaveRepository
	dispatcher events.Dispatcher
}

// NewLeaveService constructs the service.
func NewLeaveService(leaves repository.LeaveRepository, dispatcher events.Dispatcher) *LeaveService {
	return &LeaveService{leaves: leaves, dispatcher: dispatcher}
}

// LeaveCreateInput describes a PTO request payload.
type LeaveCreateInput struct {
	ManagerRef string
	Type       domain.LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
}

// SubmitRequest files a PTO request for the calling principal.
func (s *LeaveService) SubmitRequest(ctx context.Context, principal *auth.Principal, input LeaveCreateInput) (*domain.LeaveRequest, error) {
	switch input.Type {
	case domain.LeaveTypeVacation, domain.LeaveTypeSick, domain.LeaveTypePersonal, domain.LeaveTypeUnpaid:
	default:
		return nil, apperrors.NewValidationError("unknown leave type", map[string]any{"type": input.Type})
	}
	if !input.EndDate.After(input.StartDate) && !input.EndDate.Equal(input.StartDate) {
		return nil, apperrors.NewValidationError("end date before start date", nil)
	}

	overlap, err := s.leaves.OverlapExists(ctx, principal.Email, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, apperrors.NewConflict("overlapping leave request exists", nil)
	}

	req := &domain.LeaveRequest{
		EmployeeRef: principal.Email,
		ManagerRef:  input.ManagerRef,
		Type:        input.Type,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Reason:      input.Reason,
		Status:      domain.LeaveStatusPending,
	}
	if err := s.leaves.Create(ctx, req); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventLeaveRequested, req.ID, principal, events.LeaveRequestedPayload{
		EmployeeRef: req.EmployeeRef,
		ManagerRef:  req.ManagerRef,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	return req, nil
}

// Decide approves or denies a pending request. Admin and HR may decide any
// request; a manager may decide only requests whose stored manager reference
// matches them. The role check runs first so the ownership match is skipped
// for always-allowed roles.
func (s *LeaveService) Decide(ctx context.Context, principal *auth.Principal, requestID string, approve bool) (*domain.LeaveRequest, error) {
	req, err := s.leaves.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.LeaveStatusPending {
		return nil, apperrors.NewConflict("request already decided", map[string]any{"status": req.Status})
	}

	ownership := func() bool { return auth.OwnerMatch(req.ManagerRef, principal) }
	if err := auth.AuthorizeAction(principal, leaveDeciderRoles, ownership); err != nil {
		return nil, err
	}

	now := time.Now()
	req.Status = domain.LeaveStatusApproved
	if !approve {
		req.Status = domain.LeaveStatusDenied
	}
	req.DecidedBy = &principal.Email
	req.DecidedAt = &now
	if err := s.leaves.Update(ctx, req); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventLeaveDecided, req.ID, principal, events.LeaveDecidedPayload{
		EmployeeRef: req.EmployeeRef,
		Status:      req.Status,
		DecidedBy:   principal.Email,
	})
	return req, nil
}

// ListMine returns the caller's own requests.
func (s *LeaveService) ListMine(ctx context.Context, principal *auth.Principal, limit, offset int) ([]domain.LeaveRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.leaves.ListByEmployee(ctx, principal.Email, limit, offset)
}

// ListPending returns requests awaiting a decision, for approver views.
func (s *LeaveService) ListPending(ctx context.Context, limit, offset int) ([]domain.LeaveRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.leaves.ListByStatus(ctx, domain.LeaveStatusPending, limit, offset)
}

func (s *LeaveService) publish(ctx context.Context, eventType events.EventType, subjectID string, principal *auth.Principal, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     events.Actor{UserID: principal.ID, Email: principal.Email, Role: principal.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
