package render

// Grey is the muted colour used for secondary inline text.
const Grey = "808080"

// Span is a run of text sharing one inline style. Size 0 inherits the
// paragraph size and an empty Color means black.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Size   float64
	Color  string
}

func plain(s string) Span  { return Span{Text: s} }
func bold(s string) Span   { return Span{Text: s, Bold: true} }
func italic(s string) Span { return Span{Text: s, Italic: true} }

// Block is one element of the composed story.
type Block interface {
	block()
}

// Paragraph is a run of styled spans flowed as one paragraph.
type Paragraph struct {
	Style ParagraphStyle
	Spans []Span
}

// Spacer is vertical space in points.
type Spacer struct {
	Height float64
}

// Rule is a horizontal line drawn at the current position.
type Rule struct {
	Width float64
}

// Row pairs a left paragraph with a right-aligned paragraph, both top aligned
// with no padding.
type Row struct {
	Left       Paragraph
	Right      Paragraph
	LeftWidth  float64
	RightWidth float64
}

func (Paragraph) block() {}
func (Spacer) block()    {}
func (Rule) block()      {}
func (Row) block()       {}

// Text returns the paragraph's text without styling.
func (p Paragraph) Text() string {
	n := 0
	for _, s := range p.Spans {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range p.Spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}

// Headings returns the text of every section heading in blocks.
func Headings(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		if p, ok := b.(Paragraph); ok && p.Style == StyleHeading {
			out = append(out, p.Text())
		}
	}
	return out
}

// runs merges adjacent spans with identical styling and drops empty ones.
func runs(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 {
			last := out[n-1]
			if last.Bold == s.Bold && last.Italic == s.Italic && last.Size == s.Size && last.Color == s.Color {
				out[n-1].Text += s.Text
				continue
			}
		}
		out = append(out, s)
	}
	return out
}
