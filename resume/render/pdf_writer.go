package render

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// fixedStamp keeps output byte-stable across runs.
var fixedStamp = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFWriter lays the story out with the core PDF fonts and flows it across
// pages, breaking only between blocks where it can.
type PDFWriter struct{}

func (PDFWriter) WriteDocument(_ context.Context, doc Document) ([]byte, error) {
	g := doc.Geometry
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetAutoPageBreak(true, g.Margin)
	pdf.SetCellMargin(0)
	// fonts and resources are otherwise emitted in map order
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(fixedStamp)
	pdf.SetModificationDate(fixedStamp)
	pdf.SetCreator("resume-styler", false)
	pdf.SetTitle("Professional Resume - "+doc.Profile.Template.String(), true)
	pdf.AddPage()

	pass := &pdfPass{pdf: pdf, doc: doc}
	for _, b := range doc.Blocks {
		pass.block(b)
		if pdf.Err() {
			break
		}
	}
	if pdf.Err() {
		return nil, pdf.Error()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfPass struct {
	pdf *fpdf.Fpdf
	doc Document
}

func (w *pdfPass) block(b Block) {
	g := w.doc.Geometry
	switch b := b.(type) {
	case Paragraph:
		st := w.doc.Profile.TextStyle(b.Style)
		if st.SpaceBefore > 0 && w.pdf.GetY() > g.Margin {
			w.pdf.SetY(w.pdf.GetY() + st.SpaceBefore)
		}
		w.ensure(w.height(b, st, g.ContentWidth()))
		w.flow(b, st, g.Margin, g.ContentWidth())
		if st.SpaceAfter > 0 {
			w.pdf.SetY(w.pdf.GetY() + st.SpaceAfter)
		}
	case Spacer:
		if w.pdf.GetY()+b.Height > w.limit() {
			return
		}
		w.pdf.Ln(b.Height)
	case Rule:
		if w.pdf.GetY() > w.limit() {
			w.pdf.AddPage()
		}
		y := w.pdf.GetY()
		w.pdf.SetLineWidth(1)
		w.pdf.SetDrawColor(0, 0, 0)
		w.pdf.Line(g.Margin, y, g.Margin+b.Width, y)
	case Row:
		w.row(b)
	}
}

func (w *pdfPass) row(r Row) {
	g := w.doc.Geometry
	left := w.doc.Profile.TextStyle(r.Left.Style)
	right := w.doc.Profile.TextStyle(r.Right.Style)
	w.ensure(max(w.height(r.Left, left, r.LeftWidth), w.height(r.Right, right, r.RightWidth)))

	page, y0 := w.pdf.PageNo(), w.pdf.GetY()
	w.flow(r.Left, left, g.Margin, r.LeftWidth)
	yLeft := w.pdf.GetY()
	if w.pdf.PageNo() != page {
		y0 = g.Margin
	}
	w.pdf.SetY(y0)
	w.flow(r.Right, right, g.Margin+r.LeftWidth, r.RightWidth)
	w.pdf.SetY(max(yLeft, w.pdf.GetY()))
}

// flow writes one paragraph inside the column [x, x+width]. A single style run
// goes through MultiCell so alignment applies; mixed runs are written inline
// and are always left aligned.
func (w *pdfPass) flow(p Paragraph, st TextStyle, x, width float64) {
	x += st.LeftIndent
	width -= st.LeftIndent
	rs := runs(p.Spans)

	if len(rs) <= 1 {
		var span Span
		if len(rs) == 1 {
			span = rs[0]
		}
		w.setFont(st, span)
		w.pdf.SetXY(x, w.pdf.GetY())
		w.pdf.MultiCell(width, st.Leading, winAnsi(span.Text), "", alignStr(st.Align), false)
		return
	}

	lm, _, rm, _ := w.pdf.GetMargins()
	pageWidth, _ := w.pdf.GetPageSize()
	w.pdf.SetLeftMargin(x)
	w.pdf.SetRightMargin(pageWidth - x - width)
	w.pdf.SetX(x)
	for _, s := range rs {
		w.setFont(st, s)
		w.pdf.Write(st.Leading, winAnsi(s.Text))
	}
	w.pdf.Ln(st.Leading)
	w.pdf.SetLeftMargin(lm)
	w.pdf.SetRightMargin(rm)
}

func (w *pdfPass) setFont(st TextStyle, s Span) {
	style := ""
	if st.Font.Bold || s.Bold {
		style += "B"
	}
	if s.Italic {
		style += "I"
	}
	size := st.Size
	if s.Size > 0 {
		size = s.Size
	}
	w.pdf.SetFont(string(st.Font.Family), style, size)
	w.pdf.SetTextColor(hexRGB(s.Color))
}

// height estimates the laid out height of p using the paragraph's base font.
func (w *pdfPass) height(p Paragraph, st TextStyle, width float64) float64 {
	w.setFont(st, Span{})
	lines := 0
	for _, para := range strings.Split(winAnsi(p.Text()), "\n") {
		lines += w.wrapCount(para, width-st.LeftIndent)
	}
	return float64(max(lines, 1)) * st.Leading
}

func (w *pdfPass) wrapCount(text string, width float64) int {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 1
	}
	space := w.pdf.GetStringWidth(" ")
	lines, cur := 1, 0.0
	for i, word := range words {
		ww := w.pdf.GetStringWidth(word)
		if i > 0 && cur+space+ww > width {
			lines++
			cur = ww
			continue
		}
		if i > 0 {
			cur += space
		}
		cur += ww
	}
	return lines
}

// ensure starts a new page when a block of height h would cross the bottom
// margin and would fit on a fresh page.
func (w *pdfPass) ensure(h float64) {
	top := w.doc.Geometry.Margin
	y := w.pdf.GetY()
	if y+h > w.limit() && y > top && h <= w.limit()-top {
		w.pdf.AddPage()
	}
}

func (w *pdfPass) limit() float64 {
	_, pageHeight := w.pdf.GetPageSize()
	return pageHeight - w.doc.Geometry.Margin
}

func alignStr(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	default:
		return "L"
	}
}
