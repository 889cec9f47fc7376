// Package export renders a resume document into downloadable formats. All
// renderers share one intermediate section model so that the section order
// (header, summary, experience, education, skills, certifications, languages)
// and the omission of empty sections are decided in exactly one place.
package export

import (
	"fmt"
	"strings"

	"github.com/adewale-dev/portfolio-api/internal/models"
)

// Style classifies a rendered line so each output format can pick its own
// typography for it.
type Style int

const (
	StyleTitle Style = iota
	StyleMeta
	StyleBody
	StyleBullet
	StyleLink
)

type Line struct {
	Text  string
	Style Style
}

// Section is one headed part of the resume. Blocks keep the order the
// administrator entered; renderers must not re-sort them.
type Section struct {
	Heading string
	Blocks  [][]Line
}

// HeaderLines builds the contact header. The first line is the full name;
// every other line appears only when its field is set, so no renderer has to
// deal with dangling separators or blank lines.
func HeaderLines(r *models.Resume) []string {
	pi := r.PersonalInfo
	lines := []string{pi.FullName}
	var contact []string
	if pi.Email != "" {
		contact = append(contact, pi.Email)
	}
	if pi.Phone != "" {
		contact = append(contact, pi.Phone)
	}
	if len(contact) > 0 {
		lines = append(lines, strings.Join(contact, " | "))
	}
	if pi.Location != "" {
		lines = append(lines, pi.Location)
	}
	if pi.Website != "" {
		lines = append(lines, "Website: "+pi.Website)
	}
	if pi.LinkedIn != "" {
		lines = append(lines, "LinkedIn: "+pi.LinkedIn)
	}
	if pi.GitHub != "" {
		lines = append(lines, "GitHub: "+pi.GitHub)
	}
	return lines
}

// BuildSections projects the resume into ordered sections, skipping every
// section with no content.
func BuildSections(r *models.Resume) []Section {
	var out []Section

	if r.PersonalInfo.Summary != "" {
		out = append(out, Section{
			Heading: "SUMMARY",
			Blocks:  [][]Line{{{Text: r.PersonalInfo.Summary, Style: StyleBody}}},
		})
	}

	if len(r.Experience) > 0 {
		s := Section{Heading: "EXPERIENCE"}
		for _, exp := range r.Experience {
			end := exp.EndDate
			if exp.Current {
				end = "Present"
			}
			block := []Line{
				{Text: exp.Position + " at " + exp.Company, Style: StyleTitle},
				{Text: exp.StartDate + " - " + end, Style: StyleMeta},
			}
			if exp.Description != "" {
				block = append(block, Line{Text: exp.Description, Style: StyleBody})
			}
			for _, ach := range exp.Achievements {
				block = append(block, Line{Text: ach, Style: StyleBullet})
			}
			s.Blocks = append(s.Blocks, block)
		}
		out = append(out, s)
	}

	if len(r.Education) > 0 {
		s := Section{Heading: "EDUCATION"}
		for _, edu := range r.Education {
			dates := edu.StartDate + " - " + edu.EndDate
			if edu.GPA != "" {
				dates += " | GPA: " + edu.GPA
			}
			s.Blocks = append(s.Blocks, []Line{
				{Text: edu.Degree + " in " + edu.Field, Style: StyleTitle},
				{Text: edu.Institution, Style: StyleBody},
				{Text: dates, Style: StyleMeta},
			})
		}
		out = append(out, s)
	}

	if len(r.Skills) > 0 {
		s := Section{Heading: "SKILLS"}
		for _, grp := range r.Skills {
			s.Blocks = append(s.Blocks, []Line{
				{Text: grp.Category + ": " + strings.Join(grp.Skills, ", "), Style: StyleBody},
			})
		}
		out = append(out, s)
	}

	if len(r.Certifications) > 0 {
		s := Section{Heading: "CERTIFICATIONS"}
		for _, cert := range r.Certifications {
			block := []Line{
				{Text: fmt.Sprintf("%s - %s (%s)", cert.Name, cert.Issuer, cert.Date), Style: StyleBody},
			}
			if cert.URL != "" {
				block = append(block, Line{Text: cert.URL, Style: StyleLink})
			}
			s.Blocks = append(s.Blocks, block)
		}
		out = append(out, s)
	}

	if len(r.Languages) > 0 {
		s := Section{Heading: "LANGUAGES"}
		for _, lang := range r.Languages {
			s.Blocks = append(s.Blocks, []Line{
				{Text: lang.Language + ": " + lang.Proficiency, Style: StyleBody},
			})
		}
		out = append(out, s)
	}

	return out
}

// Filename produces the download name for a rendering, e.g.
// "Ada_Lovelace_Resume.pdf".
func Filename(r *models.Resume, ext string) string {
	name := strings.Join(strings.Fields(r.PersonalInfo.FullName), "_")
	if name == "" {
		name = "Resume"
		return name + "." + ext
	}
	return name + "_Resume." + ext
}
