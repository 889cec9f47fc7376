package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adewale-dev/portfolio-api/internal/models"
	"github.com/stretchr/testify/require"
)

func fullResume() *models.Resume {
	return &models.Resume{
		PersonalInfo: models.PersonalInfo{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+44 1234",
			Location: "London",
			Website:  "https://ada.example.com",
			Summary:  "Mathematician and programmer.",
		},
		Experience: []models.Experience{
			{Company: "Analytical Engines Ltd", Position: "Programmer", StartDate: "1842", Current: true,
				Description: "Wrote the first published algorithm.",
				Achievements: []string{"Note G", "Bernoulli numbers"}},
			{Company: "Royal Society", Position: "Correspondent", StartDate: "1840", EndDate: "1842"},
		},
		Education: []models.Education{
			{Institution: "Home tutoring", Degree: "Studies", Field: "Mathematics", StartDate: "1828", EndDate: "1835", GPA: "4.0"},
		},
		Skills: []models.SkillGroup{
			{Category: "Analysis", Skills: []string{"Calculus", "Logic"}},
		},
		Languages: []models.Language{
			{Language: "English", Proficiency: "Native"},
		},
	}
}

func TestBuildSectionsOrderAndOmission(t *testing.T) {
	secs := BuildSections(fullResume())

	var headings []string
	for _, s := range secs {
		headings = append(headings, s.Heading)
	}
	// no certifications in the source, so no CERTIFICATIONS section at all
	require.Equal(t, []string{"SUMMARY", "EXPERIENCE", "EDUCATION", "SKILLS", "LANGUAGES"}, headings)
}

func TestBuildSectionsPreservesEntryOrder(t *testing.T) {
	secs := BuildSections(fullResume())
	require.Equal(t, "EXPERIENCE", secs[1].Heading)
	require.Len(t, secs[1].Blocks, 2)
	require.Equal(t, "Programmer at Analytical Engines Ltd", secs[1].Blocks[0][0].Text)
	require.Equal(t, "Correspondent at Royal Society", secs[1].Blocks[1][0].Text)
	// current position renders an open-ended date range
	require.Equal(t, "1842 - Present", secs[1].Blocks[0][1].Text)
}

func TestHeaderLinesSkipsEmptyFields(t *testing.T) {
	r := &models.Resume{
		PersonalInfo: models.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
	}
	lines := HeaderLines(r)
	require.Equal(t, []string{"Ada Lovelace", "ada@example.com"}, lines)

	// phone without email keeps a single-field contact line
	r.PersonalInfo.Email = ""
	r.PersonalInfo.Phone = "+44 1234"
	require.Equal(t, []string{"Ada Lovelace", "+44 1234"}, HeaderLines(r))
}

func TestHeaderLinesFull(t *testing.T) {
	lines := HeaderLines(fullResume())
	require.Equal(t, []string{
		"Ada Lovelace",
		"ada@example.com | +44 1234",
		"London",
		"Website: https://ada.example.com",
	}, lines)
}

func TestBuildSectionsEmptyResume(t *testing.T) {
	secs := BuildSections(&models.Resume{
		PersonalInfo: models.PersonalInfo{FullName: "A", Email: "a@x.com"},
	})
	require.Empty(t, secs)
}

func TestRenderText(t *testing.T) {
	out := string(RenderText(fullResume()))

	require.True(t, strings.HasPrefix(out, "Ada Lovelace\n"))
	require.Contains(t, out, "ada@example.com | +44 1234")
	require.Contains(t, out, "Website: https://ada.example.com")
	require.Contains(t, out, strings.Repeat("=", 60))
	require.Contains(t, out, "SUMMARY\n"+strings.Repeat("-", 60))
	require.Contains(t, out, "Achievements:\n  • Note G\n  • Bernoulli numbers")
	require.Contains(t, out, "Studies in Mathematics\nHome tutoring\n1828 - 1835 | GPA: 4.0")
	require.Contains(t, out, "Analysis: Calculus, Logic")
	require.NotContains(t, out, "CERTIFICATIONS")

	// section ordering in the flat text
	require.Less(t, strings.Index(out, "SUMMARY"), strings.Index(out, "EXPERIENCE"))
	require.Less(t, strings.Index(out, "EXPERIENCE"), strings.Index(out, "EDUCATION"))
	require.Less(t, strings.Index(out, "SKILLS"), strings.Index(out, "LANGUAGES"))
}

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(fullResume())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderPDFManyEntriesPaginates(t *testing.T) {
	r := fullResume()
	for i := 0; i < 40; i++ {
		r.Experience = append(r.Experience, models.Experience{
			Company: "Company", Position: "Role", StartDate: "2000", EndDate: "2001",
			Description: "Did a lot of things across a long stretch of time.",
		})
	}
	out, err := RenderPDF(r)
	require.NoError(t, err)
	// the page tree node also matches, so >2 means at least two pages
	require.Greater(t, bytes.Count(out, []byte("/Type /Page")), 2)
}

func TestRenderDOCX(t *testing.T) {
	out, err := RenderDOCX(fullResume())
	require.NoError(t, err)
	// docx files are zip archives
	require.True(t, bytes.HasPrefix(out, []byte("PK")))
}

func TestFilename(t *testing.T) {
	r := fullResume()
	require.Equal(t, "Ada_Lovelace_Resume.pdf", Filename(r, "pdf"))
	r.PersonalInfo.FullName = ""
	require.Equal(t, "Resume.txt", Filename(r, "txt"))
}
