package render

import (
	"context"
	"strings"
)

// OutlineWriter renders the story as Markdown-like plain text, one line per
// block: "# " for the name, "## " for headings, "---" for rules, an empty
// line for spacers and "left<TAB>right" for rows.
type OutlineWriter struct{}

func (OutlineWriter) WriteDocument(_ context.Context, doc Document) ([]byte, error) {
	return []byte(strings.Join(OutlineLines(doc.Blocks), "\n") + "\n"), nil
}

// OutlineLines returns the outline text of each block.
func OutlineLines(blocks []Block) []string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch b := b.(type) {
		case Paragraph:
			line := outlineSpans(b.Spans)
			switch b.Style {
			case StyleName:
				line = "# " + line
			case StyleHeading:
				line = "## " + line
			}
			lines = append(lines, line)
		case Spacer:
			lines = append(lines, "")
		case Rule:
			lines = append(lines, "---")
		case Row:
			lines = append(lines, outlineSpans(b.Left.Spans)+"\t"+outlineSpans(b.Right.Spans))
		}
	}
	return lines
}

func outlineSpans(spans []Span) string {
	var sb strings.Builder
	for _, s := range runs(spans) {
		switch {
		case s.Bold && s.Italic:
			sb.WriteString("***" + s.Text + "***")
		case s.Bold:
			sb.WriteString("**" + s.Text + "**")
		case s.Italic:
			sb.WriteString("*" + s.Text + "*")
		default:
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}
