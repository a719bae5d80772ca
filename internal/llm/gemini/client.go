package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"resume-styler/internal/llm"
	"resume-styler/internal/shared/telemetry"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Client implements llm.Client on Vertex AI Gemini models.
type Client struct {
	genaiClient *genai.Client
	model       string
}

// Options configures the Vertex AI connection.
type Options struct {
	Project         string
	Location        string
	Model           string
	CredentialsFile string
}

// NewClient connects to Vertex AI. Without a credentials file the
// application default credentials are used.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if strings.TrimSpace(opts.Project) == "" {
		return nil, fmt.Errorf("GEMINI_PROJECT is required for Gemini")
	}
	if strings.TrimSpace(opts.Model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	creds, err := loadCredentials(ctx, opts.CredentialsFile)
	if err != nil {
		return nil, err
	}
	client, err := genai.NewClient(ctx, opts.Project, opts.Location, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}
	return &Client{genaiClient: client, model: opts.Model}, nil
}

func loadCredentials(ctx context.Context, path string) (*google.Credentials, error) {
	if strings.TrimSpace(path) == "" {
		creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("failed to get default credentials: %w", err)
		}
		return creds, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, raw, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}
	return creds, nil
}

// Complete asks the model for a JSON response to prompt.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	model := c.genaiClient.GenerativeModel(c.model)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}
	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	fields := map[string]any{
		"provider":       "gemini",
		"model":          c.model,
		"prompt_version": llm.ExtractionPromptVersion,
	}
	if resp.UsageMetadata != nil {
		fields["prompt_tokens"] = resp.UsageMetadata.PromptTokenCount
		fields["completion_tokens"] = resp.UsageMetadata.CandidatesTokenCount
		fields["total_tokens"] = resp.UsageMetadata.TotalTokenCount
	}
	telemetry.Info("llm.response", fields)
	return text, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.genaiClient == nil {
		return nil
	}
	return c.genaiClient.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

var _ llm.Client = (*Client)(nil)
