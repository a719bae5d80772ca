package service

import (
	"context"
	"errors"
	"testing"

	"resume-styler/internal/llm"
	"resume-styler/resume/contract"
)

type mockLLMClient struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (m *mockLLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	response := m.responses[m.calls]
	m.calls++
	return response, nil
}

const resumeText = "Jane Doe\njane@example.com\n555-123-4567\nEngineer at Acme"

func TestExtractDecodesFencedJSON(t *testing.T) {
	mock := &mockLLMClient{responses: []string{"```json\n" + `{
		"name": "Jane Doe",
		"contact": "email:jane@example.com | phone:555-123-4567",
		"experience": [{"company": "Acme", "role": "Engineer", "dates": 2020, "bullets": "Built X"}],
		"awards": [{"name": "Best Paper", "year": 2021}],
		"MoU": "Signed MoU with Lab",
		"extra": true
	}` + "\n```"}}

	got, err := NewExtractor(mock).Extract(context.Background(), resumeText)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if got.Fallback || got.Attempts != 1 {
		t.Fatalf("unexpected extraction meta %+v", got)
	}
	rec := got.Record
	if rec.Name != "Jane Doe" {
		t.Fatalf("expected name, got %q", rec.Name)
	}
	if rec.Contact != "jane@example.com | 555-123-4567" {
		t.Fatalf("expected cleaned contact, got %q", rec.Contact)
	}
	if len(rec.Experience) != 1 || rec.Experience[0].Dates != "2020" {
		t.Fatalf("expected numeric dates as text, got %+v", rec.Experience)
	}
	if len(rec.Experience[0].Bullets) != 1 || rec.Experience[0].Bullets[0] != "Built X" {
		t.Fatalf("expected single bullet, got %+v", rec.Experience[0].Bullets)
	}
	if rec.Awards[0].Year != "2021" {
		t.Fatalf("expected award year as text, got %q", rec.Awards[0].Year)
	}
	if rec.Affiliations != "Signed MoU with Lab" {
		t.Fatalf("expected affiliations, got %q", rec.Affiliations)
	}
	if rec.Projects == nil || rec.References == nil {
		t.Fatalf("expected empty lists instead of nil")
	}
	if len(mock.prompts) != 1 || mock.prompts[0] != llm.ExtractionPrompt(resumeText) {
		t.Fatalf("expected extraction prompt to be sent")
	}
}

func TestExtractRetriesWhenNoJSONFound(t *testing.T) {
	mock := &mockLLMClient{responses: []string{
		"Sorry, I cannot help with that.",
		`Here you go: {"name":"Ada Lovelace","contact":""} thanks`,
	}}
	got, err := NewExtractor(mock).Extract(context.Background(), resumeText)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if mock.calls != 2 || got.Attempts != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.calls)
	}
	if got.Record.Name != "Ada Lovelace" {
		t.Fatalf("expected name from second attempt, got %q", got.Record.Name)
	}
	if got.Record.Contact != "jane@example.com | 555-123-4567" {
		t.Fatalf("expected detected contact fallback, got %q", got.Record.Contact)
	}
}

func TestExtractFallsBackAfterRetries(t *testing.T) {
	mock := &mockLLMClient{responses: []string{"nope", "still nope"}}
	got, err := NewExtractor(mock).Extract(context.Background(), resumeText)
	if err != nil {
		t.Fatalf("expected best-effort success, got error: %v", err)
	}
	if !got.Fallback {
		t.Fatalf("expected fallback extraction")
	}
	if got.Record.Name != contract.PlaceholderName {
		t.Fatalf("expected placeholder name, got %q", got.Record.Name)
	}
	if got.Record.Contact != "jane@example.com | 555-123-4567" {
		t.Fatalf("expected detected contact, got %q", got.Record.Contact)
	}
	if len(got.Record.Experience) != 0 || got.Record.Experience == nil {
		t.Fatalf("expected empty experience list")
	}
}

func TestExtractPropagatesClientErrors(t *testing.T) {
	mock := &mockLLMClient{err: llm.ErrNotConfigured}
	_, err := NewExtractor(mock).Extract(context.Background(), resumeText)
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestExtractWithoutClient(t *testing.T) {
	_, err := NewExtractor(nil).Extract(context.Background(), resumeText)
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "fenced no lang", raw: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "narrative", raw: `result: {"a":{"b":2}} done`, want: `{"a":{"b":2}}`},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "array only", raw: `[1,2]`, wantErr: true},
		{name: "broken", raw: `{"a":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
