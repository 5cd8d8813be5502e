package service

import (
	"context"
	"time"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// ShiftService manages the shift schedule.
type ShiftService struct {
	shifts    repository.ShiftRepository
	employees repository.EmployeeRepository
}

// NewShiftService constructs the service.
func NewShiftService(shifts repository.ShiftRepository, employees repository.EmployeeRepository) *ShiftService {
	return &ShiftService{shifts: shifts, employees: employees}
}

// ShiftInput describes a create/update payload.
type ShiftInput struct {
	EmployeeID string
	Position   string
	StartsAt   time.Time
	EndsAt     time.Time
	Notes      string
}

func (in ShiftInput) validate() error {
	if in.EmployeeID == "" {
		return apperrors.NewValidationError("employee_id required", nil)
	}
	if !in.EndsAt.After(in.StartsAt) {
		return apperrors.NewValidationError("shift must end after it starts", nil)
	}
	return nil
}

// Create schedules a shift, rejecting overlaps for the same employee.
func (s *ShiftService) Create(ctx context.Context, input ShiftInput) (*domain.Shift, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if _, err := s.employees.GetByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, input, ""); err != nil {
		return nil, err
	}

	shift := &domain.Shift{
		EmployeeID: input.EmployeeID,
		Position:   input.Position,
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
		Notes:      input.Notes,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// Update reschedules a shift, rejecting overlaps with other shifts.
func (s *ShiftService) Update(ctx context.Context, id string, input ShiftInput) (*domain.Shift, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, input, shift.ID); err != nil {
		return nil, err
	}

	shift.EmployeeID = input.EmployeeID
	shift.Position = input.Position
	shift.StartsAt = input.StartsAt
	shift.EndsAt = input.EndsAt
	shift.Notes = input.Notes
	if err := s.shifts.Update(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// Delete removes a shift.
func (s *ShiftService) Delete(ctx context.Context, id string) error {
	return s.shifts.Delete(ctx, id)
}

// ListByEmployee returns an employee's shifts within a range.
func (s *ShiftService) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]domain.Shift, error) {
	return s.shifts.ListByEmployee(ctx, employeeID, from, to)
}

// ListByRange returns all shifts within a range.
func (s *ShiftService) ListByRange(ctx context.Context, from, to time.Time) ([]domain.Shift, error) {
	return s.shifts.ListByRange(ctx, from, to)
}

func (s *ShiftService) checkOverlap(ctx context.Context, input ShiftInput, excludeID string) error {
	existing, err := s.shifts.ListByEmployee(ctx, input.EmployeeID, input.StartsAt, input.EndsAt)
	if err != nil {
		return err
	}
	candidate := domain.Shift{StartsAt: input.StartsAt, EndsAt: input.EndsAt}
	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		if candidate.Overlaps(other) {
			return apperrors.NewConflict("shift overlaps an existing shift", map[string]any{
				"conflicting_shift_id": other.ID,
			})
		}
	}
	return nil
}
