package dto

// DocumentRequest payload for registering upload metadata.
type DocumentRequest struct {
	FileName   string `json:"file_name"`
	MimeType   string `json:"mime_type"`
	SizeBytes  int64  `json:"size_bytes"`
	OwnerEmail string `json:"owner_email"`
}
