package extract

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// DetectContact scans raw resume text for the first email address and phone
// number and joins whatever it finds with " | ". It returns "" when neither
// is present.
func DetectContact(text string) string {
	var parts []string
	if email := emailPattern.FindString(text); email != "" {
		parts = append(parts, email)
	}
	if phone := phonePattern.FindString(text); phone != "" {
		parts = append(parts, strings.TrimSpace(phone))
	}
	return strings.Join(parts, " | ")
}
