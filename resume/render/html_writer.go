package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// HTMLWriter produces a standalone page. Every span's text is passed through
// Sanitize exactly once before it is wrapped in markup.
type HTMLWriter struct{}

func (HTMLWriter) WriteDocument(_ context.Context, doc Document) ([]byte, error) {
	var b strings.Builder
	g := doc.Geometry
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Professional Resume - " + Sanitize(doc.Profile.Template.String()) + "</title>\n<style>\n")
	fmt.Fprintf(&b, "@page { size: %spt %spt; margin: %spt; }\n", pt(g.PageWidth), pt(g.PageHeight), pt(g.Margin))
	fmt.Fprintf(&b, "body { margin: 0 auto; width: %spt; color: #000; }\n", pt(g.ContentWidth()))
	b.WriteString("p { margin: 0; }\ntable.row { width: 100%; border-collapse: collapse; }\n")
	b.WriteString("table.row td { padding: 0; vertical-align: top; }\nhr { border: 0; border-top: 1pt solid #000; margin: 0; }\n")
	for _, s := range []struct {
		class string
		style ParagraphStyle
	}{
		{"name", StyleName}, {"contact", StyleContact}, {"heading", StyleHeading},
		{"body", StyleBody}, {"bullet", StyleBullet}, {"left", StyleLeftCol}, {"right", StyleRightCol},
	} {
		b.WriteString(cssRule(s.class, doc.Profile.TextStyle(s.style)))
	}
	b.WriteString("</style>\n</head>\n<body>\n")

	for _, blk := range doc.Blocks {
		switch blk := blk.(type) {
		case Paragraph:
			b.WriteString(htmlParagraph(blk))
		case Spacer:
			fmt.Fprintf(&b, "<div style=\"height:%spt\"></div>\n", pt(blk.Height))
		case Rule:
			fmt.Fprintf(&b, "<hr style=\"width:%spt\">\n", pt(blk.Width))
		case Row:
			fmt.Fprintf(&b, "<table class=\"row\"><tr><td style=\"width:%spt\">%s</td><td style=\"width:%spt\">%s</td></tr></table>\n",
				pt(blk.LeftWidth), strings.TrimSuffix(htmlParagraph(blk.Left), "\n"),
				pt(blk.RightWidth), strings.TrimSuffix(htmlParagraph(blk.Right), "\n"))
		}
	}
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String()), nil
}

func htmlParagraph(p Paragraph) string {
	var b strings.Builder
	b.WriteString("<p class=\"" + styleClass(p.Style) + "\">")
	for _, s := range runs(p.Spans) {
		b.WriteString(htmlSpan(s))
	}
	b.WriteString("</p>\n")
	return b.String()
}

func htmlSpan(s Span) string {
	text := Sanitize(s.Text)
	if s.Color != "" || s.Size > 0 {
		var style []string
		if s.Color != "" {
			style = append(style, "color:#"+s.Color)
		}
		if s.Size > 0 {
			style = append(style, "font-size:"+pt(s.Size)+"pt")
		}
		text = "<span style=\"" + strings.Join(style, ";") + "\">" + text + "</span>"
	}
	if s.Italic {
		text = "<i>" + text + "</i>"
	}
	if s.Bold {
		text = "<b>" + text + "</b>"
	}
	return text
}

func cssRule(class string, st TextStyle) string {
	family := "Helvetica, Arial, sans-serif"
	if st.Font.Family == Serif {
		family = "\"Times New Roman\", Times, serif"
	}
	weight := "normal"
	if st.Font.Bold {
		weight = "bold"
	}
	return fmt.Sprintf(".%s { font-family: %s; font-weight: %s; font-size: %spt; line-height: %spt; text-align: %s; margin: %spt 0 %spt %spt; white-space: pre-wrap; }\n",
		class, family, weight, pt(st.Size), pt(st.Leading), st.Align, pt(st.SpaceBefore), pt(st.SpaceAfter), pt(st.LeftIndent))
}

func styleClass(s ParagraphStyle) string {
	switch s {
	case StyleName:
		return "name"
	case StyleContact:
		return "contact"
	case StyleHeading:
		return "heading"
	case StyleBullet:
		return "bullet"
	case StyleLeftCol:
		return "left"
	case StyleRightCol:
		return "right"
	default:
		return "body"
	}
}

func pt(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
