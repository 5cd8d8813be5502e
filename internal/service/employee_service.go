package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// EmployeeService manages employee records.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

// NewEmployeeService constructs the service.
func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// EmployeeInput describes a create/update payload.
type EmployeeInput struct {
	Name       string
	Email      string
	Title      string
	Department string
	ManagerRef string
	Status     domain.EmployeeStatus
	StartDate  time.Time
}

func (in EmployeeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}
	switch in.Status {
	case domain.EmployeeStatusActive, domain.EmployeeStatusOnLeave, domain.EmployeeStatusInactive:
		return nil
	}
	return apperrors.NewValidationError("unknown employee status", map[string]any{"status": in.Status})
}

// Create adds an employee record.
func (s *EmployeeService) Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	emp := &domain.Employee{
		Name:       input.Name,
		Email:      NormalizeEmail(input.Email),
		Title:      input.Title,
		Department: input.Department,
		ManagerRef: input.ManagerRef,
		Status:     input.Status,
		StartDate:  input.StartDate,
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Update replaces an employee record's fields.
func (s *EmployeeService) Update(ctx context.Context, id string, input EmployeeInput) (*domain.Employee, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	emp.Name = input.Name
	emp.Email = NormalizeEmail(input.Email)
	emp.Title = input.Title
	emp.Department = input.Department
	emp.ManagerRef = input.ManagerRef
	emp.Status = input.Status
	emp.StartDate = input.StartDate
	if err := s.employees.Update(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Delete removes an employee record.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.employees.Delete(ctx, id)
}

// Get returns one employee.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

// List returns employees, optionally filtered by department.
func (s *EmployeeService) List(ctx context.Context, department *string, limit, offset int) ([]domain.Employee, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.employees.List(ctx, department, limit, offset)
}
