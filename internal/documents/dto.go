package documents

import (
	"time"

	"resume-styler/resume/model"
)

// DocumentResponse is the outward-facing representation of an extraction.
type DocumentResponse struct {
	DocumentID string             `json:"documentId"`
	FileName   string             `json:"fileName"`
	MimeType   string             `json:"mimeType"`
	SizeBytes  int64              `json:"sizeBytes"`
	UploadedAt time.Time          `json:"uploadedAt"`
	Fallback   bool               `json:"fallback"`
	Record     model.ResumeRecord `json:"record"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		MimeType:   doc.MimeType,
		SizeBytes:  doc.SizeBytes,
		UploadedAt: doc.CreatedAt,
		Fallback:   doc.Fallback,
		Record:     doc.Record,
	}
}
