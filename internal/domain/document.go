package domain

import "time"

// Document stores metadata for an uploaded file. The blob itself lives in
// external storage addressed by StorageKey.
type Document struct {
	ID         string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	OwnerEmail string
	UploadedBy string
	CreatedAt  time.Time
}
