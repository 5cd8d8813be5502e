package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// documentDeleterRoles may delete any document without owning it.
var documentDeleterRoles = auth.Roles(domain.RoleAdmin, domain.RoleHR)

// DocumentService manages document metadata. Blob storage is external; this
// layer only tracks storage keys.
type DocumentService struct {
	documents repository.DocumentRepository
}

// NewDocumentService constructs the service.
func NewDocumentService(documents repository.DocumentRepository) *DocumentService {
	return &DocumentService{documents: documents}
}

// DocumentInput describes an upload registration payload.
type DocumentInput struct {
	FileName   string
	MimeType   string
	SizeBytes  int64
	OwnerEmail string
}

// Register records metadata for an uploaded file and assigns a storage key.
func (s *DocumentService) Register(ctx context.Context, principal *auth.Principal, input DocumentInput) (*domain.Document, error) {
	if strings.TrimSpace(input.FileName) == "" {
		return nil, apperrors.NewValidationError("file_name required", nil)
	}
	if input.SizeBytes <= 0 {
		return nil, apperrors.NewValidationError("size_bytes must be positive", nil)
	}

	owner := NormalizeEmail(input.OwnerEmail)
	if owner == "" {
		owner = NormalizeEmail(principal.Email)
	}
	doc := &domain.Document{
		FileName:   input.FileName,
		MimeType:   input.MimeType,
		SizeBytes:  input.SizeBytes,
		StorageKey: uuid.NewString(),
		OwnerEmail: owner,
		UploadedBy: principal.Email,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a document's metadata. Admin and HR may delete anything;
// other callers only their own documents.
func (s *DocumentService) Delete(ctx context.Context, principal *auth.Principal, id string) error {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !documentDeleterRoles.Contains(principal.Role) && !auth.OwnerMatch(doc.OwnerEmail, principal) {
		return apperrors.NewForbidden("not the document owner")
	}
	return s.documents.Delete(ctx, id)
}

// List returns document metadata, optionally filtered by owner.
func (s *DocumentService) List(ctx context.Context, ownerEmail *string, limit, offset int) ([]domain.Document, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.documents.List(ctx, ownerEmail, limit, offset)
}
