package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
)

func recruiterPrincipal() *auth.Principal {
	return &auth.Principal{ID: "r1", Email: "rec@example.com", Name: "Re Cruiter", Role: domain.RoleRecruiter}
}

func TestApplicantCreateStartsAtApplied(t *testing.T) {
	svc := NewApplicantService(newFakeApplicantRepo(), nil)

	app, err := svc.Create(context.Background(), ApplicantInput{
		Name:     "Sam Candidate",
		Email:    "Sam@Example.com",
		Position: "Backend Engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StageApplied, app.Stage)
	assert.Equal(t, "sam@example.com", app.Email)
	assert.NotEmpty(t, app.ID)
}

func TestApplicantCreateValidation(t *testing.T) {
	svc := NewApplicantService(newFakeApplicantRepo(), nil)

	_, err := svc.Create(context.Background(), ApplicantInput{Name: " ", Position: "Engineer"})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), ApplicantInput{Name: "Sam", Position: ""})
	assert.Error(t, err)
}

func TestMoveStageAllowedTransitions(t *testing.T) {
	repo := newFakeApplicantRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewApplicantService(repo, dispatcher)

	app, err := svc.Create(context.Background(), ApplicantInput{Name: "Sam", Email: "sam@example.com", Position: "Engineer"})
	require.NoError(t, err)

	for _, stage := range []domain.ApplicantStage{
		domain.StageScreening,
		domain.StageInterview,
		domain.StageOffer,
		domain.StageHired,
	} {
		app, err = svc.MoveStage(context.Background(), recruiterPrincipal(), app.ID, stage)
		require.NoError(t, err, "to %s", stage)
		assert.Equal(t, stage, app.Stage)
	}

	published := dispatcher.events()
	require.Len(t, published, 4)
	assert.Equal(t, events.EventApplicantStageChanged, published[0].Type)
}

func TestMoveStageRejectsSkips(t *testing.T) {
	repo := newFakeApplicantRepo()
	svc := NewApplicantService(repo, nil)

	app, err := svc.Create(context.Background(), ApplicantInput{Name: "Sam", Email: "sam@example.com", Position: "Engineer"})
	require.NoError(t, err)

	_, err = svc.MoveStage(context.Background(), recruiterPrincipal(), app.ID, domain.StageOffer)
	assert.Error(t, err)

	stored, err := repo.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageApplied, stored.Stage)
}

func TestMoveStageRejectFromAnyOpenStage(t *testing.T) {
	svc := NewApplicantService(newFakeApplicantRepo(), nil)

	app, err := svc.Create(context.Background(), ApplicantInput{Name: "Sam", Email: "sam@example.com", Position: "Engineer"})
	require.NoError(t, err)

	app, err = svc.MoveStage(context.Background(), recruiterPrincipal(), app.ID, domain.StageRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.StageRejected, app.Stage)

	// Terminal stages have no outgoing transitions.
	_, err = svc.MoveStage(context.Background(), recruiterPrincipal(), app.ID, domain.StageScreening)
	assert.Error(t, err)
}

func TestUpdateNotes(t *testing.T) {
	svc := NewApplicantService(newFakeApplicantRepo(), nil)

	app, err := svc.Create(context.Background(), ApplicantInput{Name: "Sam", Email: "sam@example.com", Position: "Engineer"})
	require.NoError(t, err)

	updated, err := svc.UpdateNotes(context.Background(), app.ID, "strong phone screen")
	require.NoError(t, err)
	assert.Equal(t, "strong phone screen", updated.Notes)
}

func TestApplicantListFilterByStage(t *testing.T) {
	svc := NewApplicantService(newFakeApplicantRepo(), nil)

	_, err := svc.Create(context.Background(), ApplicantInput{Name: "A", Email: "a@example.com", Position: "X"})
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), ApplicantInput{Name: "B", Email: "b@example.com", Position: "Y"})
	require.NoError(t, err)
	_, err = svc.MoveStage(context.Background(), recruiterPrincipal(), b.ID, domain.StageScreening)
	require.NoError(t, err)

	stage := domain.StageScreening
	got, err := svc.List(context.Background(), &stage, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Name)

	all, err := svc.List(context.Background(), nil, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
