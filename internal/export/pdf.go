package export

import (
	"bytes"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin = 20.0
	// rough per-block space estimates used for page-break decisions; the
	// contract is "break before a block that will not fit", not exact layout
	spaceHeading = 30.0
	spaceBlock   = 40.0
	spaceLine    = 15.0
)

type pdfWriter struct {
	pdf       *fpdf.Fpdf
	tr        func(string) string
	pageWidth float64
	pageH     float64
}

func (w *pdfWriter) checkPageBreak(required float64) {
	if w.pdf.GetY()+required > w.pageH-pdfMargin {
		w.pdf.AddPage()
		w.pdf.SetY(pdfMargin)
	}
}

func (w *pdfWriter) text(s string, size float64, bold bool, r, g, b int) {
	style := ""
	if bold {
		style = "B"
	}
	w.pdf.SetFont("Helvetica", style, size)
	w.pdf.SetTextColor(r, g, b)
	w.pdf.SetX(pdfMargin)
	w.pdf.MultiCell(w.pageWidth-2*pdfMargin, size*0.5, w.tr(s), "", "L", false)
	w.pdf.SetY(w.pdf.GetY() + 2)
}

func (w *pdfWriter) line(l Line) {
	switch l.Style {
	case StyleTitle:
		w.text(l.Text, 12, true, 0, 0, 0)
	case StyleMeta:
		w.text(l.Text, 9, false, 100, 100, 100)
	case StyleBullet:
		w.checkPageBreak(spaceLine)
		w.text("• "+l.Text, 9, false, 0, 0, 0)
	case StyleLink:
		w.text(l.Text, 8, false, 0, 0, 255)
	default:
		w.text(l.Text, 10, false, 0, 0, 0)
	}
}

// RenderPDF produces the paginated PDF rendering of the resume. Page breaks
// are inserted whenever the estimated space for the next block exceeds what is
// left on the current page.
func RenderPDF(r *models.Resume) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, pdfMargin)
	doc.AddPage()
	doc.SetY(pdfMargin)

	pw, ph := doc.GetPageSize()
	w := &pdfWriter{
		pdf:       doc,
		tr:        doc.UnicodeTranslatorFromDescriptor(""),
		pageWidth: pw,
		pageH:     ph,
	}

	header := HeaderLines(r)
	w.text(header[0], 22, true, 75, 0, 130)
	for _, line := range header[1:] {
		w.text(line, 10, false, 0, 0, 0)
	}

	y := doc.GetY() + 3
	doc.SetDrawColor(75, 0, 130)
	doc.Line(pdfMargin, y, pw-pdfMargin, y)
	doc.SetY(y + 6)

	for _, sec := range BuildSections(r) {
		w.checkPageBreak(spaceHeading)
		w.text(sec.Heading, 14, true, 75, 0, 130)
		for _, block := range sec.Blocks {
			w.checkPageBreak(spaceBlock)
			for _, line := range block {
				w.line(line)
			}
			doc.SetY(doc.GetY() + 3)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
