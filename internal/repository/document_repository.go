package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// DocumentRepository defines persistence access for document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, ownerEmail *string, limit, offset int) ([]domain.Document, error)
}

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository returns a Postgres-backed implementation.
func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepository{pool: pool}
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	const query = `
        INSERT INTO documents (file_name, mime_type, size_bytes, storage_key, owner_email, uploaded_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		doc.FileName,
		doc.MimeType,
		doc.SizeBytes,
		doc.StorageKey,
		doc.OwnerEmail,
		doc.UploadedBy,
	).Scan(&doc.ID, &doc.CreatedAt)
}

func (r *documentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	const query = `
        SELECT id, file_name, mime_type, size_bytes, storage_key, owner_email, uploaded_by, created_at
        FROM documents WHERE id=$1`

	var doc domain.Document
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.FileName,
		&doc.MimeType,
		&doc.SizeBytes,
		&doc.StorageKey,
		&doc.OwnerEmail,
		&doc.UploadedBy,
		&doc.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) List(ctx context.Context, ownerEmail *string, limit, offset int) ([]domain.Document, error) {
	const query = `
        SELECT id, file_name, mime_type, size_bytes, storage_key, owner_email, uploaded_by, created_at
        FROM documents
        WHERE ($1::text IS NULL OR LOWER(owner_email) = LOWER($1))
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, ownerEmail, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(
			&doc.ID,
			&doc.FileName,
			&doc.MimeType,
			&doc.SizeBytes,
			&doc.StorageKey,
			&doc.OwnerEmail,
			&doc.UploadedBy,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
