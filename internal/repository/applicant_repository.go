package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// ApplicantRepository defines persistence access for candidates.
type ApplicantRepository interface {
	Create(ctx context.Context, app *domain.Applicant) error
	Update(ctx context.Context, app *domain.Applicant) error
	GetByID(ctx context.Context, id string) (*domain.Applicant, error)
	List(ctx context.Context, stage *domain.ApplicantStage, limit, offset int) ([]domain.Applicant, error)
	CountOpen(ctx context.Context) (int64, error)
}

type applicantRepository struct {
	pool *pgxpool.Pool
}

// NewApplicantRepository returns a Postgres-backed implementation.
func NewApplicantRepository(pool *pgxpool.Pool) ApplicantRepository {
	return &applicantRepository{pool: pool}
}

func (r *applicantRepository) Create(ctx context.Context, app *domain.Applicant) error {
	const query = `
        INSERT INTO applicants (name, email, position, stage, notes, resume_url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		app.Name,
		app.Email,
		app.Position,
		app.Stage,
		app.Notes,
		app.ResumeURL,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

func (r *applicantRepository) Update(ctx context.Context, app *domain.Applicant) error {
	const query = `
        UPDATE applicants
        SET name=$1, email=$2, position=$3, stage=$4, notes=$5, resume_url=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		app.Name,
		app.Email,
		app.Position,
		app.Stage,
		app.Notes,
		app.ResumeURL,
		app.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicantRepository) GetByID(ctx context.Context, id string) (*domain.Applicant, error) {
	const query = `
        SELECT id, name, email, position, stage, notes, resume_url, created_at, updated_at
        FROM applicants WHERE id=$1`

	var app domain.Applicant
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&app.ID,
		&app.Name,
		&app.Email,
		&app.Position,
		&app.Stage,
		&app.Notes,
		&app.ResumeURL,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicantRepository) List(ctx context.Context, stage *domain.ApplicantStage, limit, offset int) ([]domain.Applicant, error) {
	const query = `
        SELECT id, name, email, position, stage, notes, resume_url, created_at, updated_at
        FROM applicants
        WHERE ($1::text IS NULL OR stage = $1)
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, stage, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applicants := make([]domain.Applicant, 0)
	for rows.Next() {
		var app domain.Applicant
		if err := rows.Scan(
			&app.ID,
			&app.Name,
			&app.Email,
			&app.Position,
			&app.Stage,
			&app.Notes,
			&app.ResumeURL,
			&app.CreatedAt,
			&app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applicants = append(applicants, app)
	}
	return applicants, rows.Err()
}

func (r *applicantRepository) CountOpen(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM applicants WHERE stage NOT IN ($1, $2)`

	var count int64
	err := r.pool.QueryRow(ctx, query, domain.StageHired, domain.StageRejected).Scan(&count)
	return count, err
}
