package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// LeaveRepository defines persistence access for PTO requests.
type LeaveRepository interface {
	Create(ctx context.Context, req *domain.LeaveRequest) error
	Update(ctx context.Context, req *domain.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeRef string, limit, offset int) ([]domain.LeaveRequest, error)
	ListByStatus(ctx context.Context, status domain.LeaveStatus, limit, offset int) ([]domain.LeaveRequest, error)
	CountPending(ctx context.Context) (int64, error)
	OverlapExists(ctx context.Context, employeeRef string, start, end time.Time) (bool, error)
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository returns a Postgres-backed implementation.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

func (r *leaveRepository) Create(ctx context.Context, req *domain.LeaveRequest) error {
	const query = `
        INSERT INTO leave_requests (employee_ref, manager_ref, type, start_date, end_date, reason, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		req.EmployeeRef,
		req.ManagerRef,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *leaveRepository) Update(ctx context.Context, req *domain.LeaveRequest) error {
	const query = `
        UPDATE leave_requests
        SET status=$1, decided_by=$2, decided_at=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query, req.Status, req.DecidedBy, req.DecidedAt, req.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	const query = `
        SELECT id, employee_ref, manager_ref, type, start_date, end_date, reason, status,
               decided_by, decided_at, created_at, updated_at
        FROM leave_requests WHERE id=$1`

	var req domain.LeaveRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.EmployeeRef,
		&req.ManagerRef,
		&req.Type,
		&req.StartDate,
		&req.EndDate,
		&req.Reason,
		&req.Status,
		&req.DecidedBy,
		&req.DecidedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeRef string, limit, offset int) ([]domain.LeaveRequest, error) {
	const query = `
        SELECT id, employee_ref, manager_ref, type, start_date, end_date, reason, status,
               decided_by, decided_at, created_at, updated_at
        FROM leave_requests
        WHERE LOWER(employee_ref) = LOWER($1)
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	return r.list(ctx, query, employeeRef, limit, offset)
}

func (r *leaveRepository) ListByStatus(ctx context.Context, status domain.LeaveStatus, limit, offset int) ([]domain.LeaveRequest, error) {
	const query = `
        SELECT id, employee_ref, manager_ref, type, start_date, end_date, reason, status,
               decided_by, decided_at, created_at, updated_at
        FROM leave_requests
        WHERE status = $1
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	return r.list(ctx, query, status, limit, offset)
}

func (r *leaveRepository) list(ctx context.Context, query string, arg any, limit, offset int) ([]domain.LeaveRequest, error) {
	rows, err := r.pool.Query(ctx, query, arg, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]domain.LeaveRequest, 0)
	for rows.Next() {
		var req domain.LeaveRequest
		if err := rows.Scan(
			&req.ID,
			&req.EmployeeRef,
			&req.ManagerRef,
			&req.Type,
			&req.StartDate,
			&req.EndDate,
			&req.Reason,
			&req.Status,
			&req.DecidedBy,
			&req.DecidedAt,
			&req.CreatedAt,
			&req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *leaveRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status=$1`, domain.LeaveStatusPending).Scan(&count)
	return count, err
}

func (r *leaveRepository) OverlapExists(ctx context.Context, employeeRef string, start, end time.Time) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM leave_requests
            WHERE LOWER(employee_ref) = LOWER($1)
              AND status != $2
              AND start_date <= $4 AND end_date >= $3
        )`

	var exists bool
	err := r.pool.QueryRow(ctx, query, employeeRef, domain.LeaveStatusDenied, start, end).Scan(&exists)
	return exists, err
}
