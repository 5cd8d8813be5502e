package dto

// ApplicantRequest payload for candidate creation.
type ApplicantRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Position  string  `json:"position"`
	Notes     string  `json:"notes"`
	ResumeURL *string `json:"resume_url,omitempty"`
}

// ApplicantStageRequest payload for stage moves.
type ApplicantStageRequest struct {
	Stage string `json:"stage"`
}

// ApplicantNotesRequest payload for note updates.
type ApplicantNotesRequest struct {
	Notes string `json:"notes"`
}
