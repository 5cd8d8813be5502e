package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// CalendarService manages company calendar events.
type CalendarService struct {
	calendar repository.CalendarRepository
}

// NewCalendarService constructs the service.
func NewCalendarService(calendar repository.CalendarRepository) *CalendarService {
	return &CalendarService{calendar: calendar}
}

// CalendarEventInput describes a create/update payload.
type CalendarEventInput struct {
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	AllDay      bool
}

func (in CalendarEventInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return apperrors.NewValidationError("title required", nil)
	}
	if !in.EndsAt.After(in.StartsAt) {
		return apperrors.NewValidationError("event must end after it starts", nil)
	}
	return nil
}

// Create adds an event, recording who created it.
func (s *CalendarService) Create(ctx context.Context, createdBy string, input CalendarEventInput) (*domain.CalendarEvent, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	event := &domain.CalendarEvent{
		Title:       input.Title,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		AllDay:      input.AllDay,
		CreatedBy:   createdBy,
	}
	if err := s.calendar.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update replaces an event's fields.
func (s *CalendarService) Update(ctx context.Context, id string, input CalendarEventInput) (*domain.CalendarEvent, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	event, err := s.calendar.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Title = input.Title
	event.Description = input.Description
	event.StartsAt = input.StartsAt
	event.EndsAt = input.EndsAt
	event.AllDay = input.AllDay
	if err := s.calendar.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event.
func (s *CalendarService) Delete(ctx context.Context, id string) error {
	return s.calendar.Delete(ctx, id)
}

// ListByRange returns events within a time window.
func (s *CalendarService) ListByRange(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	if !to.After(from) {
		return nil, apperrors.NewValidationError("invalid range", nil)
	}
	return s.calendar.ListByRange(ctx, from, to)
}
