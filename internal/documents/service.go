package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resume-styler/internal/extract"
	"resume-styler/internal/shared/metrics"
	"resume-styler/internal/shared/util"
	"resume-styler/resume/service"
)

// DefaultMaxUploadBytes bounds uploads when no limit is configured.
const DefaultMaxUploadBytes = 10 << 20

// RecordExtractor turns raw resume text into a record.
type RecordExtractor interface {
	Extract(ctx context.Context, resumeText string) (service.Extraction, error)
}

// Service extracts records from uploaded resume documents.
type Service struct {
	Extractor      RecordExtractor
	MaxUploadBytes int64
}

// Extract reads the upload, pulls its text and asks the extractor for a record.
func (s *Service) Extract(ctx context.Context, fileName, mimeType string, r io.Reader) (Document, error) {
	clean, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	limit := s.MaxUploadBytes
	if limit <= 0 {
		limit = DefaultMaxUploadBytes
	}
	var buf bytes.Buffer
	size, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return Document{}, err
	}
	if size > limit {
		return Document{}, ErrTooLarge
	}
	if size == 0 {
		return Document{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	data := buf.Bytes()
	resolved := extract.NormalizeMimeType(mimeType, clean, data)

	start := time.Now()
	text, err := extract.ExtractTextFromBytes(ctx, data, resolved, clean)
	if err != nil {
		metrics.ObserveExtract(false, time.Since(start))
		return Document{}, err
	}
	extraction, err := s.Extractor.Extract(ctx, text)
	metrics.ObserveExtract(err == nil, time.Since(start))
	if err != nil {
		return Document{}, err
	}

	return Document{
		ID:        uuid.NewString(),
		FileName:  clean,
		MimeType:  resolved,
		SizeBytes: size,
		CreatedAt: time.Now().UTC(),
		Fallback:  extraction.Fallback,
		Record:    extraction.Record,
	}, nil
}
