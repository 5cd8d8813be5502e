package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// CalendarRepository defines persistence access for company events.
type CalendarRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) error
	Update(ctx context.Context, event *domain.CalendarEvent) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error)
}

type calendarRepository struct {
	pool *pgxpool.Pool
}

// NewCalendarRepository returns a Postgres-backed implementation.
func NewCalendarRepository(pool *pgxpool.Pool) CalendarRepository {
	return &calendarRepository{pool: pool}
}

func (r *calendarRepository) Create(ctx context.Context, event *domain.CalendarEvent) error {
	const query = `
        INSERT INTO calendar_events (title, description, starts_at, ends_at, all_day, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.StartsAt,
		event.EndsAt,
		event.AllDay,
		event.CreatedBy,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *calendarRepository) Update(ctx context.Context, event *domain.CalendarEvent) error {
	const query = `
        UPDATE calendar_events
        SET title=$1, description=$2, starts_at=$3, ends_at=$4, all_day=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		event.Title,
		event.Description,
		event.StartsAt,
		event.EndsAt,
		event.AllDay,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *calendarRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM calendar_events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *calendarRepository) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	const query = `
        SELECT id, title, description, starts_at, ends_at, all_day, created_by, created_at, updated_at
        FROM calendar_events WHERE id=$1`

	var event domain.CalendarEvent
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartsAt,
		&event.EndsAt,
		&event.AllDay,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *calendarRepository) ListByRange(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	const query = `
        SELECT id, title, description, starts_at, ends_at, all_day, created_by, created_at, updated_at
        FROM calendar_events
        WHERE starts_at < $2 AND ends_at > $1
        ORDER BY starts_at`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	eventsList := make([]domain.CalendarEvent, 0)
	for rows.Next() {
		var event domain.CalendarEvent
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.StartsAt,
			&event.EndsAt,
			&event.AllDay,
			&event.CreatedBy,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		eventsList = append(eventsList, event)
	}
	return eventsList, rows.Err()
}
