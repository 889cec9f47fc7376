package export

import (
	"bytes"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/fumiama/go-docx"
)

const accentColor = "4B0082"

// RenderDOCX produces the word-processor rendering of the resume.
func RenderDOCX(r *models.Resume) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	header := HeaderLines(r)
	name := doc.AddParagraph().Justification("center")
	name.AddText(header[0]).Size("44").Bold().Color(accentColor)
	for _, line := range header[1:] {
		p := doc.AddParagraph().Justification("center")
		p.AddText(line).Size("20")
	}
	doc.AddParagraph()

	for _, sec := range BuildSections(r) {
		h := doc.AddParagraph()
		h.AddText(sec.Heading).Size("28").Bold().Color(accentColor)
		for _, block := range sec.Blocks {
			for _, line := range block {
				p := doc.AddParagraph()
				switch line.Style {
				case StyleTitle:
					p.AddText(line.Text).Size("24").Bold()
				case StyleMeta:
					p.AddText(line.Text).Size("18").Color("646464")
				case StyleBullet:
					p.AddText("• " + line.Text).Size("18")
				case StyleLink:
					p.AddText(line.Text).Size("16").Color("0000FF")
				default:
					p.AddText(line.Text).Size("20")
				}
			}
			doc.AddParagraph()
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
