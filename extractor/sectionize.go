package extractor

import (
	"strings"

	"github.com/Mr2-hex/quivo-backend/models"
)

// sectionAliases maps the heading spellings seen in real resumes to the
// canonical section names downstream code interpolates.
var sectionAliases = map[string]string{
	"summary":                     models.SectionSummary,
	"professional summary":        models.SectionSummary,
	"objective":                   models.SectionSummary,
	"career objective":            models.SectionSummary,
	"profile":                     models.SectionSummary,
	"about me":                    models.SectionSummary,
	"experience":                  models.SectionExperience,
	"work experience":             models.SectionExperience,
	"professional experience":     models.SectionExperience,
	"employment history":          models.SectionExperience,
	"work history":                models.SectionExperience,
	"skills":                      models.SectionSkills,
	"technical skills":            models.SectionSkills,
	"core competencies":           models.SectionSkills,
	"key skills":                  models.SectionSkills,
	"education":                   models.SectionEducation,
	"academic background":         models.SectionEducation,
	"qualifications":              models.SectionEducation,
	"certifications":              models.SectionCertifications,
	"certificates":                models.SectionCertifications,
	"licenses":                    models.SectionCertifications,
	"licenses and certifications": models.SectionCertifications,
}

// Sectionize splits extracted plain text into the canonical section
// map. Lines are assigned to the most recent recognized heading; text
// before the first heading lands in the summary section. Every
// canonical section is keyed in the result even when absent from the
// document.
func Sectionize(text string) *models.ParsedResume {
	resume := models.NewParsedResume()
	bodies := make(map[string][]string, len(models.SectionNames))

	current := models.SectionSummary
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if section, ok := matchHeading(trimmed); ok {
			current = section
			continue
		}
		bodies[current] = append(bodies[current], trimmed)
	}

	for section, lines := range bodies {
		resume.Sections[section] = strings.Join(lines, "\n")
	}
	return resume
}

// matchHeading reports whether a line is a recognized section heading.
// Headings are short standalone lines, optionally ending in a colon.
func matchHeading(line string) (string, bool) {
	if len(line) > 40 {
		return "", false
	}
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	section, ok := sectionAliases[key]
	return section, ok
}
