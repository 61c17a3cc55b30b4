package gemini

import (
	"fmt"

	"github.com/Mr2-hex/quivo-backend/models"
)

// titlePrompt is the fixed instruction template. The serialized section
// map is the only variable content.
const titlePrompt = `You are an expert career analyst. Based on the resume content below, identify the candidate's professional job titles.

Rules:
- The FIRST element must be the single most specific and representative title for this candidate (e.g. "Backend Engineer", not "Engineer").
- Collapse redundant near-synonyms into one title.
- Include 1 to 4 titles total. Never pad the list with invented titles; fewer is better than made up.
- Return ONLY a JSON array of strings, no markdown formatting, no explanation.

Example response: ["Backend Engineer", "Software Engineer", "DevOps Engineer"]

RESUME:
Summary: %s
Experience: %s
Skills: %s
Education: %s
Certifications: %s`

func buildPrompt(resume *models.ParsedResume) string {
	return fmt.Sprintf(titlePrompt,
		resume.Section(models.SectionSummary),
		resume.Section(models.SectionExperience),
		resume.Section(models.SectionSkills),
		resume.Section(models.SectionEducation),
		resume.Section(models.SectionCertifications),
	)
}
