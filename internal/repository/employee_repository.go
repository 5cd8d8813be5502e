package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// EmployeeRepository defines persistence access for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, department *string, limit, offset int) ([]domain.Employee, error)
	CountByStatus(ctx context.Context, status domain.EmployeeStatus) (int64, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (name, email, title, department, manager_ref, status, start_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		emp.Name,
		emp.Email,
		emp.Title,
		emp.Department,
		emp.ManagerRef,
		emp.Status,
		emp.StartDate,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees
        SET name=$1, email=$2, title=$3, department=$4, manager_ref=$5, status=$6, start_date=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		emp.Name,
		emp.Email,
		emp.Title,
		emp.Department,
		emp.ManagerRef,
		emp.Status,
		emp.StartDate,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const query = `
        SELECT id, name, email, title, department, manager_ref, status, start_date, created_at, updated_at
        FROM employees WHERE id=$1`

	var emp domain.Employee
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.Title,
		&emp.Department,
		&emp.ManagerRef,
		&emp.Status,
		&emp.StartDate,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, department *string, limit, offset int) ([]domain.Employee, error) {
	const query = `
        SELECT id, name, email, title, department, manager_ref, status, start_date, created_at, updated_at
        FROM employees
        WHERE ($1::text IS NULL OR department = $1)
        ORDER BY name LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, department, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.Name,
			&emp.Email,
			&emp.Title,
			&emp.Department,
			&emp.ManagerRef,
			&emp.Status,
			&emp.StartDate,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) CountByStatus(ctx context.Context, status domain.EmployeeStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status=$1`, status).Scan(&count)
	return count, err
}
