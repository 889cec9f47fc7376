package export

import (
	"strings"

	"github.com/adewale-dev/portfolio-api/internal/models"
)

var (
	headerRule  = strings.Repeat("=", 60)
	sectionRule = strings.Repeat("-", 60)
)

// RenderText produces the plain-text rendering of the resume.
func RenderText(r *models.Resume) []byte {
	var b strings.Builder

	for _, line := range HeaderLines(r) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n" + headerRule + "\n\n")

	for _, sec := range BuildSections(r) {
		b.WriteString(sec.Heading + "\n" + sectionRule + "\n")
		for _, block := range sec.Blocks {
			inBullets := false
			for _, line := range block {
				switch line.Style {
				case StyleTitle:
					// titled blocks are separated by a blank line
					b.WriteString("\n" + line.Text + "\n")
				case StyleBullet:
					if !inBullets {
						b.WriteString("Achievements:\n")
						inBullets = true
					}
					b.WriteString("  • " + line.Text + "\n")
				case StyleLink:
					b.WriteString("  " + line.Text + "\n")
				default:
					b.WriteString(line.Text + "\n")
				}
			}
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}
