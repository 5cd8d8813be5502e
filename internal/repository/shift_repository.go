package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// ShiftRepository defines persistence access for scheduled shifts.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	Update(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]domain.Shift, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]domain.Shift, error)
}

type shiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository returns a Postgres-backed implementation.
func NewShiftRepository(pool *pgxpool.Pool) ShiftRepository {
	return &shiftRepository{pool: pool}
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	const query = `
        INSERT INTO shifts (employee_id, position, starts_at, ends_at, notes)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		shift.EmployeeID,
		shift.Position,
		shift.StartsAt,
		shift.EndsAt,
		shift.Notes,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)
}

func (r *shiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	const query = `
        UPDATE shifts
        SET employee_id=$1, position=$2, starts_at=$3, ends_at=$4, notes=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		shift.EmployeeID,
		shift.Position,
		shift.StartsAt,
		shift.EndsAt,
		shift.Notes,
		shift.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shifts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	const query = `
        SELECT id, employee_id, position, starts_at, ends_at, notes, created_at, updated_at
        FROM shifts WHERE id=$1`

	var shift domain.Shift
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&shift.ID,
		&shift.EmployeeID,
		&shift.Position,
		&shift.StartsAt,
		&shift.EndsAt,
		&shift.Notes,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]domain.Shift, error) {
	const query = `
        SELECT id, employee_id, position, starts_at, ends_at, notes, created_at, updated_at
        FROM shifts
        WHERE employee_id=$1 AND starts_at < $3 AND ends_at > $2
        ORDER BY starts_at`

	return r.list(ctx, query, employeeID, from, to)
}

func (r *shiftRepository) ListByRange(ctx context.Context, from, to time.Time) ([]domain.Shift, error) {
	const query = `
        SELECT id, employee_id, position, starts_at, ends_at, notes, created_at, updated_at
        FROM shifts
        WHERE starts_at < $2 AND ends_at > $1
        ORDER BY starts_at`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

func (r *shiftRepository) list(ctx context.Context, query string, args ...any) ([]domain.Shift, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

func scanShifts(rows pgx.Rows) ([]domain.Shift, error) {
	shifts := make([]domain.Shift, 0)
	for rows.Next() {
		var shift domain.Shift
		if err := rows.Scan(
			&shift.ID,
			&shift.EmployeeID,
			&shift.Position,
			&shift.StartsAt,
			&shift.EndsAt,
			&shift.Notes,
			&shift.CreatedAt,
			&shift.UpdatedAt,
		); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}
