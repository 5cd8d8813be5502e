package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// AnnouncementRepository defines persistence access for broadcasts.
type AnnouncementRepository interface {
	Create(ctx context.Context, ann *domain.Announcement) error
	Update(ctx context.Context, ann *domain.Announcement) error
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Announcement, error)
}

type announcementRepository struct {
	pool *pgxpool.Pool
}

// NewAnnouncementRepository returns a Postgres-backed implementation.
func NewAnnouncementRepository(pool *pgxpool.Pool) AnnouncementRepository {
	return &announcementRepository{pool: pool}
}

func (r *announcementRepository) Create(ctx context.Context, ann *domain.Announcement) error {
	const query = `
        INSERT INTO announcements (title, body, author_name, published_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		ann.Title,
		ann.Body,
		ann.AuthorName,
		ann.PublishedAt,
	).Scan(&ann.ID, &ann.CreatedAt, &ann.UpdatedAt)
}

func (r *announcementRepository) Update(ctx context.Context, ann *domain.Announcement) error {
	const query = `
        UPDATE announcements
        SET title=$1, body=$2, published_at=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query, ann.Title, ann.Body, ann.PublishedAt, ann.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	const query = `
        SELECT id, title, body, author_name, published_at, created_at, updated_at
        FROM announcements WHERE id=$1`

	var ann domain.Announcement
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ann.ID,
		&ann.Title,
		&ann.Body,
		&ann.AuthorName,
		&ann.PublishedAt,
		&ann.CreatedAt,
		&ann.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ann, nil
}

func (r *announcementRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Announcement, error) {
	const query = `
        SELECT id, title, body, author_name, published_at, created_at, updated_at
        FROM announcements
        WHERE ($1 = false OR published_at IS NOT NULL)
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, publishedOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	anns := make([]domain.Announcement, 0)
	for rows.Next() {
		var ann domain.Announcement
		if err := rows.Scan(
			&ann.ID,
			&ann.Title,
			&ann.Body,
			&ann.AuthorName,
			&ann.PublishedAt,
			&ann.CreatedAt,
			&ann.UpdatedAt,
		); err != nil {
			return nil, err
		}
		anns = append(anns, ann)
	}
	return anns, rows.Err()
}
