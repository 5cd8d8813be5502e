package domain

import "time"

// ApplicantStage enumerates pipeline stages for candidates.
type ApplicantStage string

const (
	StageApplied   ApplicantStage = "APPLIED"
	StageScreening ApplicantStage = "SCREENING"
	StageInterview ApplicantStage = "INTERVIEW"
	StageOffer     ApplicantStage = "OFFER"
	StageHired     ApplicantStage = "HIRED"
	StageRejected  ApplicantStage = "REJECTED"
)

// Applicant is a candidate in the hiring pipeline.
type Applicant struct {
	ID        string
	Name      string
	Email     string
	Position  string
	Stage     ApplicantStage
	Notes     string
	ResumeURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// stageTransitions maps each stage to the stages it may move to.
var stageTransitions = map[ApplicantStage][]ApplicantStage{
	StageApplied:   {StageScreening, StageRejected},
	StageScreening: {StageInterview, StageRejected},
	StageInterview: {StageOffer, StageRejected},
	StageOffer:     {StageHired, StageRejected},
}

// CanTransition reports whether a stage move is allowed.
func CanTransition(from, to ApplicantStage) bool {
	for _, next := range stageTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
