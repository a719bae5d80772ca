package documents

import (
	"errors"
	"time"

	"resume-styler/resume/model"
)

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooLarge indicates the upload exceeds the configured limit.
	ErrTooLarge = errors.New("document too large")
)

// Document is an uploaded resume and the record extracted from it. Uploads
// are not persisted.
type Document struct {
	ID        string
	FileName  string
	MimeType  string
	SizeBytes int64
	CreatedAt time.Time
	Fallback  bool
	Record    model.ResumeRecord
}
