package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/domain"
)

func newShiftFixture(t *testing.T) (*ShiftService, *fakeShiftRepo, string) {
	t.Helper()

	shifts := newFakeShiftRepo()
	employees := newFakeEmployeeRepo()
	emp := &domain.Employee{Name: "Em Ployee", Email: "emp@example.com", Status: domain.EmployeeStatusActive}
	require.NoError(t, employees.Create(context.Background(), emp))

	return NewShiftService(shifts, employees), shifts, emp.ID
}

func shiftAt(employeeID string, hour, durationHours int) ShiftInput {
	start := time.Date(2026, 10, 5, hour, 0, 0, 0, time.UTC)
	return ShiftInput{
		EmployeeID: employeeID,
		Position:   "Reception",
		StartsAt:   start,
		EndsAt:     start.Add(time.Duration(durationHours) * time.Hour),
	}
}

func TestShiftCreate(t *testing.T) {
	svc, _, empID := newShiftFixture(t)

	shift, err := svc.Create(context.Background(), shiftAt(empID, 9, 8))
	require.NoError(t, err)
	assert.NotEmpty(t, shift.ID)
	assert.Equal(t, empID, shift.EmployeeID)
}

func TestShiftCreateValidation(t *testing.T) {
	svc, _, empID := newShiftFixture(t)

	input := shiftAt(empID, 9, 8)
	input.EmployeeID = ""
	_, err := svc.Create(context.Background(), input)
	assert.Error(t, err)

	input = shiftAt(empID, 9, 8)
	input.EndsAt = input.StartsAt
	_, err = svc.Create(context.Background(), input)
	assert.Error(t, err)
}

func TestShiftCreateUnknownEmployee(t *testing.T) {
	svc, _, _ := newShiftFixture(t)

	_, err := svc.Create(context.Background(), shiftAt("missing", 9, 8))
	assert.Error(t, err)
}

func TestShiftCreateRejectsOverlap(t *testing.T) {
	svc, _, empID := newShiftFixture(t)

	_, err := svc.Create(context.Background(), shiftAt(empID, 9, 8))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), shiftAt(empID, 12, 4))
	assert.Error(t, err)

	// Back-to-back shifts do not overlap.
	_, err = svc.Create(context.Background(), shiftAt(empID, 17, 4))
	assert.NoError(t, err)
}

func TestShiftUpdateIgnoresSelfOverlap(t *testing.T) {
	svc, _, empID := newShiftFixture(t)

	shift, err := svc.Create(context.Background(), shiftAt(empID, 9, 8))
	require.NoError(t, err)

	// Shrinking the same shift must not collide with itself.
	input := shiftAt(empID, 10, 4)
	updated, err := svc.Update(context.Background(), shift.ID, input)
	require.NoError(t, err)
	assert.Equal(t, input.StartsAt, updated.StartsAt)
}

func TestShiftUpdateRejectsOverlapWithOthers(t *testing.T) {
	svc, _, empID := newShiftFixture(t)

	_, err := svc.Create(context.Background(), shiftAt(empID, 9, 4))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), shiftAt(empID, 14, 4))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, shiftAt(empID, 10, 4))
	assert.Error(t, err)
}

func TestShiftDelete(t *testing.T) {
	svc, repo, empID := newShiftFixture(t)

	shift, err := svc.Create(context.Background(), shiftAt(empID, 9, 8))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), shift.ID))
	_, err = repo.GetByID(context.Background(), shift.ID)
	assert.Error(t, err)
}
