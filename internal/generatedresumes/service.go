package generatedresumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-styler/internal/shared/metrics"
	"resume-styler/internal/shared/telemetry"
	"resume-styler/resume/contract"
	"resume-styler/resume/model"
	"resume-styler/resume/render"
)

// PreviewFileName is the download name of the all-templates bundle.
const PreviewFileName = "Professional_Resume_Preview.zip"

// bundleLabel is the template label recorded for all-template previews.
const bundleLabel = "bundle"

// Service validates edited records and renders them.
type Service struct {
	Renderer render.Renderer
}

// Templates lists the selectable templates with their profiles in menu order.
func (s *Service) Templates() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(render.Templates()))
	for _, t := range render.Templates() {
		out = append(out, toTemplateInfo(t.Profile()))
	}
	return out
}

// Render decodes the raw record and renders it in the requested template and
// format.
func (s *Service) Render(ctx context.Context, templateID, rawFormat string, rawRecord []byte) (GeneratedResume, error) {
	if strings.TrimSpace(templateID) == "" {
		return GeneratedResume{}, fmt.Errorf("%w: template is required", ErrInvalidInput)
	}
	format, err := render.ParseFormat(rawFormat)
	if err != nil {
		return GeneratedResume{}, err
	}
	rec, err := editedRecord(rawRecord)
	if err != nil {
		return GeneratedResume{}, err
	}

	start := time.Now()
	out, err := s.Renderer.Render(ctx, rec, templateID, format)
	elapsed := time.Since(start)
	label := render.ParseTemplate(templateID).String()
	metrics.ObserveRender(label, string(format), err == nil, elapsed)
	if err != nil {
		telemetry.Error("render.failed", map[string]any{
			"template": templateID,
			"format":   string(format),
			"error":    err.Error(),
		})
		return GeneratedResume{}, err
	}
	telemetry.Info("render.complete", map[string]any{
		"template":    templateID,
		"profile":     label,
		"format":      string(format),
		"size_bytes":  len(out),
		"duration_ms": elapsed.Milliseconds(),
	})

	return GeneratedResume{
		TemplateID:  templateID,
		Format:      format,
		FileName:    render.DownloadFileName(templateID, format.Extension()),
		ContentType: format.ContentType(),
		Bytes:       out,
	}, nil
}

// Preview renders the record in every template and returns a zip archive.
func (s *Service) Preview(ctx context.Context, rawRecord []byte) ([]byte, error) {
	rec, err := editedRecord(rawRecord)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := s.Renderer.RenderBundle(ctx, rec)
	elapsed := time.Since(start)
	metrics.ObserveRender(bundleLabel, "zip", err == nil, elapsed)
	if err != nil {
		telemetry.Error("render.failed", map[string]any{"template": bundleLabel, "error": err.Error()})
		return nil, err
	}
	telemetry.Info("render.complete", map[string]any{
		"template":    bundleLabel,
		"format":      "zip",
		"size_bytes":  len(out),
		"duration_ms": elapsed.Milliseconds(),
	})
	return out, nil
}

// editedRecord validates the raw record and applies the editing-surface
// cleanup.
func editedRecord(raw []byte) (model.ResumeRecord, error) {
	if len(strings.TrimSpace(string(raw))) == 0 || strings.TrimSpace(string(raw)) == "null" {
		return model.ResumeRecord{}, fmt.Errorf("%w: record is required", ErrInvalidInput)
	}
	rec, err := model.DecodeRecord(raw)
	if err != nil {
		return model.ResumeRecord{}, err
	}
	return contract.Edited(rec), nil
}
