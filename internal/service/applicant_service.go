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

// ApplicantService manages the hiring pipeline.
type ApplicantService struct {
	applicants repository.ApplicantRepository
	dispatcher events.Dispatcher
}

// NewApplicantService constructs the service.
func NewApplicantService(applicants repository.ApplicantRepository, dispatcher events.Dispatcher) *ApplicantService {
	return &ApplicantService{applicants: applicants, dispatcher: dispatcher}
}

// ApplicantInput describes a create/update payload.
type ApplicantInput struct {
	Name      string
	Email     string
	Position  string
	Notes     string
	ResumeURL *string
}

// Create registers a candidate at the APPLIED stage.
func (s *ApplicantService) Create(ctx context.Context, input ApplicantInput) (*domain.Applicant, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Position) == "" {
		return nil, apperrors.NewValidationError("name and position required", nil)
	}
	app := &domain.Applicant{
		Name:      input.Name,
		Email:     NormalizeEmail(input.Email),
		Position:  input.Position,
		Stage:     domain.StageApplied,
		Notes:     input.Notes,
		ResumeURL: input.ResumeURL,
	}
	if err := s.applicants.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateNotes replaces a candidate's notes.
func (s *ApplicantService) UpdateNotes(ctx context.Context, id, notes string) (*domain.Applicant, error) {
	app, err := s.applicants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	app.Notes = notes
	if err := s.applicants.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// MoveStage advances or rejects a candidate, validating the transition.
func (s *ApplicantService) MoveStage(ctx context.Context, principal *auth.Principal, id string, to domain.ApplicantStage) (*domain.Applicant, error) {
	app, err := s.applicants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(app.Stage, to) {
		return nil, apperrors.NewConflict("stage transition not allowed", map[string]any{
			"from": app.Stage,
			"to":   to,
		})
	}

	from := app.Stage
	app.Stage = to
	if err := s.applicants.Update(ctx, app); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventApplicantStageChanged,
			SubjectID: app.ID,
			Actor:     events.Actor{UserID: principal.ID, Email: principal.Email, Role: principal.Role},
			Timestamp: time.Now(),
			Payload: events.ApplicantStageChangedPayload{
				ApplicantName: app.Name,
				Position:      app.Position,
				OldStage:      from,
				NewStage:      to,
			},
		})
	}
	return app, nil
}

// Get returns one candidate.
func (s *ApplicantService) Get(ctx context.Context, id string) (*domain.Applicant, error) {
	return s.applicants.GetByID(ctx, id)
}

// List returns candidates, optionally filtered by stage.
func (s *ApplicantService) List(ctx context.Context, stage *domain.ApplicantStage, limit, offset int) ([]domain.Applicant, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.applicants.List(ctx, stage, limit, offset)
}
