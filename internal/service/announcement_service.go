package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// AnnouncementService manages dashboard broadcasts.
type AnnouncementService struct {
	announcements repository.AnnouncementRepository
	dispatcher    events.Dispatcher
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(announcements repository.AnnouncementRepository, dispatcher events.Dispatcher) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, dispatcher: dispatcher}
}

// AnnouncementInput describes a draft payload.
type AnnouncementInput struct {
	Title string
	Body  string
}

// CreateDraft stores an unpublished announcement.
func (s *AnnouncementService) CreateDraft(ctx context.Context, principal *auth.Principal, input AnnouncementInput) (*domain.Announcement, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Body) == "" {
		return nil, apperrors.NewValidationError("title and body required", nil)
	}
	ann := &domain.Announcement{
		Title:      input.Title,
		Body:       input.Body,
		AuthorName: principal.Name,
	}
	if err := s.announcements.Create(ctx, ann); err != nil {
		return nil, err
	}
	return ann, nil
}

// Publish makes an announcement visible and notifies subscribers.
func (s *AnnouncementService) Publish(ctx context.Context, principal *auth.Principal, id string) (*domain.Announcement, error) {
	ann, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ann.Published() {
		return nil, apperrors.NewConflict("announcement already published", nil)
	}

	now := time.Now()
	ann.PublishedAt = &now
	if err := s.announcements.Update(ctx, ann); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAnnouncementPublished,
			SubjectID: ann.ID,
			Actor:     events.Actor{UserID: principal.ID, Email: principal.Email, Role: principal.Role},
			Timestamp: now,
			Payload: events.AnnouncementPublishedPayload{
				Title:      ann.Title,
				AuthorName: ann.AuthorName,
			},
		})
	}
	return ann, nil
}

// List returns announcements, restricted to published ones for non-authors.
func (s *AnnouncementService) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Announcement, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.announcements.List(ctx, publishedOnly, limit, offset)
}
