package adzuna

import "github.com/Mr2-hex/quivo-backend/models"

const (
	descriptionLimit = 200
	salaryFallback   = "Not specified"
)

// Project maps one raw record into the public summary shape. The
// ellipsis marker is appended whether or not anything was cut; the
// front-end contract expects it on every description.
func Project(job models.AdzunaJob) models.JobSummary {
	salary := job.SalaryText
	if salary == "" {
		salary = salaryFallback
	}

	desc := job.Description
	if runes := []rune(desc); len(runes) > descriptionLimit {
		desc = string(runes[:descriptionLimit])
	}
	desc += "..."

	return models.JobSummary{
		Title:       job.Title,
		Company:     job.Company.DisplayName,
		Location:    job.Location.DisplayName,
		Salary:      salary,
		Description: desc,
		URL:         job.RedirectURL,
	}
}

// ProjectAll projects every record in provider order.
func ProjectAll(jobs []models.AdzunaJob) []models.JobSummary {
	summaries := make([]models.JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, Project(job))
	}
	return summaries
}
