package render

import "strings"

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Sanitize escapes the characters the rich-text markup reserves.
// It is a one-way escape: an existing "&amp;" becomes "&amp;amp;" and is never
// turned back into "&".
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return markupEscaper.Replace(s)
}
