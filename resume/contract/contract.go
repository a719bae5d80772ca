package contract

import (
	"regexp"
	"strings"

	"resume-styler/resume/model"
)

// PlaceholderName is used when extraction could not find a name.
const PlaceholderName = "Name Not Found"

var contactNoise = regexp.MustCompile(`[{}\[\]"']|email:|phone:`)

type MissingFieldsError struct {
	Fields []string
}

func (e MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// CleanContact strips structural punctuation and field keywords that model
// output tends to leak into the contact line.
func CleanContact(s string) string {
	return strings.TrimSpace(contactNoise.ReplaceAllString(s, ""))
}

// Enforce fills the contact from the manually detected fallback when empty,
// cleans it, and ensures a name is present.
// When strict is true, a missing name is reported instead of replaced.
func Enforce(rec *model.ResumeRecord, fallbackContact string, strict bool) error {
	if strings.TrimSpace(rec.Contact) == "" {
		rec.Contact = fallbackContact
	}
	rec.Contact = CleanContact(rec.Contact)

	if strings.TrimSpace(rec.Name) == "" {
		if strict {
			return MissingFieldsError{Fields: []string{"name"}}
		}
		rec.Name = PlaceholderName
	}
	return nil
}

// Edited applies the editing-surface rules to a record about to be rendered:
// strings are trimmed, lists are non-nil and the contact is cleaned. A blank
// name is left for the renderer's default.
func Edited(rec model.ResumeRecord) model.ResumeRecord {
	rec = rec.Normalized()
	rec.Contact = CleanContact(rec.Contact)
	return rec
}
