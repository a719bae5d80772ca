package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"resume-styler/internal/extract"
	"resume-styler/internal/llm"
	"resume-styler/internal/shared/telemetry"
	"resume-styler/resume/contract"
	"resume-styler/resume/model"
)

const maxAttempts = 2

var (
	errEmptyResponse = errors.New("empty llm response")
	errNoJSONObject  = errors.New("no json object found")
)

// Extraction is the best-effort record produced from raw resume text.
type Extraction struct {
	Record model.ResumeRecord
	// Fallback is true when the model never returned a usable JSON object and
	// Record carries only the contract defaults and detected contact.
	Fallback bool
	Attempts int
}

// Extractor turns raw resume text into a record through an LLM.
type Extractor struct {
	client llm.Client
}

// NewExtractor builds an extractor on client.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract prompts the model and decodes its reply. Provider errors are
// returned as is; unparseable replies degrade to a fallback record.
func (e *Extractor) Extract(ctx context.Context, resumeText string) (Extraction, error) {
	if e == nil || e.client == nil {
		return Extraction{}, llm.ErrNotConfigured
	}
	start := time.Now()
	prompt := llm.ExtractionPrompt(resumeText)

	var (
		doc     gjson.Result
		found   bool
		lastErr error
		attempt int
	)
	for attempt = 1; attempt <= maxAttempts; attempt++ {
		raw, err := e.client.Complete(ctx, prompt)
		if err != nil {
			return Extraction{}, fmt.Errorf("llm complete: %w", err)
		}
		payload, err := extractJSONObject(raw)
		if err != nil {
			lastErr = err
			continue
		}
		doc = gjson.Parse(payload)
		found = true
		break
	}
	if attempt > maxAttempts {
		attempt = maxAttempts
	}

	out := Extraction{Attempts: attempt}
	if found {
		out.Record = model.FromJSON(doc)
	} else {
		out.Record = model.FromJSON(gjson.Parse("{}"))
		out.Fallback = true
		telemetry.Warn("extract.json_fallback", map[string]any{
			"attempts": attempt,
			"error":    errString(lastErr),
		})
	}
	if err := contract.Enforce(&out.Record, extract.DetectContact(resumeText), false); err != nil {
		return Extraction{}, err
	}
	out.Record = out.Record.Normalized()

	telemetry.Info("extract.complete", map[string]any{
		"attempts":    out.Attempts,
		"fallback":    out.Fallback,
		"duration_ms": time.Since(start).Milliseconds(),
		"experience":  len(out.Record.Experience),
		"education":   len(out.Record.Education),
	})
	return out, nil
}

// extractJSONObject strips Markdown fences and returns the outermost JSON
// object in raw.
func extractJSONObject(raw string) (string, error) {
	payload := stripFences(strings.TrimSpace(raw))
	if payload == "" {
		return "", errEmptyResponse
	}
	if gjson.Valid(payload) && gjson.Parse(payload).IsObject() {
		return payload, nil
	}

	start := strings.Index(payload, "{")
	end := strings.LastIndex(payload, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errNoJSONObject
	}

	candidate := payload[start : end+1]
	if !gjson.Valid(candidate) {
		return "", errors.New("invalid json object")
	}
	return candidate, nil
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
