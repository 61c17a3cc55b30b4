package models

// Canonical resume section names produced by the extractor.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionSkills         = "skills"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
)

// SectionNames lists every section the extractor guarantees to key,
// in document order.
var SectionNames = []string{
	SectionSummary,
	SectionExperience,
	SectionSkills,
	SectionEducation,
	SectionCertifications,
}

// ParsedResume is the structured view of one uploaded document. It is
// built once per request and never mutated afterwards. Every canonical
// section is present in the map; absent sections are empty strings so
// prompt interpolation never sees a missing key.
type ParsedResume struct {
	Sections map[string]string
}

// NewParsedResume returns a resume with every canonical section keyed.
func NewParsedResume() *ParsedResume {
	sections := make(map[string]string, len(SectionNames))
	for _, name := range SectionNames {
		sections[name] = ""
	}
	return &ParsedResume{Sections: sections}
}

// Section returns the text of a section, or "" when it was not found.
func (r *ParsedResume) Section(name string) string {
	return r.Sections[name]
}

// IsEmpty reports whether no section carries any text.
func (r *ParsedResume) IsEmpty() bool {
	for _, text := range r.Sections {
		if text != "" {
			return false
		}
	}
	return true
}
