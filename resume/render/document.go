package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-styler/resume/model"
)

var (
	// ErrUnsupportedFormat is returned by ParseFormat for unknown formats.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrEmptyOutput is reported when a writer produced no bytes.
	ErrEmptyOutput = errors.New("writer produced no output")
)

// Geometry is the page size and uniform margin in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

// LetterGeometry is US Letter with 40pt margins on every side.
func LetterGeometry() Geometry {
	return Geometry{PageWidth: 612, PageHeight: 792, Margin: 40}
}

// ContentWidth is the usable width between the side margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Document is a composed story ready for a writer.
type Document struct {
	TemplateID string
	Profile    Profile
	Geometry   Geometry
	Blocks     []Block
}

// Assemble resolves the template profile and composes the record into a
// document on letter pages.
func Assemble(rec model.ResumeRecord, templateID string) Document {
	p := ResolveProfile(templateID)
	g := LetterGeometry()
	return Document{
		TemplateID: templateID,
		Profile:    p,
		Geometry:   g,
		Blocks:     Compose(rec, p, g),
	}
}

// Writer serializes a document into bytes.
type Writer interface {
	WriteDocument(ctx context.Context, doc Document) ([]byte, error)
}

// Format is an output serialization.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatHTML    Format = "html"
	FormatOutline Format = "outline"
)

// ParseFormat accepts "", "pdf", "html" and "outline" in any case.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "pdf":
		return FormatPDF, nil
	case "html":
		return FormatHTML, nil
	case "outline", "text", "md":
		return FormatOutline, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// Extension is the file extension used for downloads.
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatOutline:
		return "md"
	default:
		return "pdf"
	}
}

// ContentType is the MIME type of the serialized output.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatOutline:
		return "text/markdown; charset=utf-8"
	default:
		return "application/pdf"
	}
}

// RenderError is the single terminal error of a render call. No partial
// output accompanies it.
type RenderError struct {
	Template string
	Stage    string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %q: %s: %v", e.Template, e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer turns records into documents. PDF is the writer used for the pdf
// format and defaults to the native PDFWriter.
type Renderer struct {
	PDF Writer
}

// Render is the core entry point: a letter-size PDF of rec in the given
// template.
func Render(rec model.ResumeRecord, templateID string) ([]byte, error) {
	return Renderer{}.Render(context.Background(), rec, templateID, FormatPDF)
}

// Render composes rec and serializes it in format.
func (r Renderer) Render(ctx context.Context, rec model.ResumeRecord, templateID string, format Format) ([]byte, error) {
	doc := Assemble(rec, templateID)
	w, err := r.writer(format)
	if err != nil {
		return nil, &RenderError{Template: templateID, Stage: "select writer", Err: err}
	}
	out, err := w.WriteDocument(ctx, doc)
	if err != nil {
		var rerr *RenderError
		if errors.As(err, &rerr) {
			return nil, rerr
		}
		return nil, &RenderError{Template: templateID, Stage: "serialize " + string(format), Err: err}
	}
	if len(out) == 0 {
		return nil, &RenderError{Template: templateID, Stage: "serialize " + string(format), Err: ErrEmptyOutput}
	}
	return out, nil
}

func (r Renderer) writer(format Format) (Writer, error) {
	switch format {
	case FormatPDF, "":
		if r.PDF != nil {
			return r.PDF, nil
		}
		return PDFWriter{}, nil
	case FormatHTML:
		return HTMLWriter{}, nil
	case FormatOutline:
		return OutlineWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// DownloadFileName is the suggested file name for a rendered template.
func DownloadFileName(templateID, ext string) string {
	return "Professional_Resume_" + strings.ReplaceAll(templateID, " ", "_") + "." + ext
}
