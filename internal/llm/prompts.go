package llm

import (
	_ "embed"
	"strings"
)

// ExtractionPromptVersion identifies the embedded extraction prompt.
const ExtractionPromptVersion = "extract_v1"

//go:embed prompts/extract_v1.txt
var extractPromptV1 string

// ExtractionPrompt fills the extraction prompt with raw resume text.
func ExtractionPrompt(resumeText string) string {
	return strings.ReplaceAll(extractPromptV1, "{{RESUME_TEXT}}", resumeText)
}
