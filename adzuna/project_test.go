package adzuna

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr2-hex/quivo-backend/models"
)

func TestProjectMapsAllFields(t *testing.T) {
	job := models.AdzunaJob{
		Title:       "Graphic Designer",
		Company:     models.AdzunaCompany{DisplayName: "Acme Creative"},
		Location:    models.AdzunaLocation{DisplayName: "Austin, TX"},
		Description: "Design things",
		SalaryText:  "$60k - $80k",
		RedirectURL: "https://example.com/jobs/42",
	}

	got := Project(job)

	assert.Equal(t, "Graphic Designer", got.Title)
	assert.Equal(t, "Acme Creative", got.Company)
	assert.Equal(t, "Austin, TX", got.Location)
	assert.Equal(t, "$60k - $80k", got.Salary)
	assert.Equal(t, "https://example.com/jobs/42", got.URL)
}

func TestProjectMissingSalaryFallsBack(t *testing.T) {
	got := Project(models.AdzunaJob{Title: "Designer"})
	assert.Equal(t, "Not specified", got.Salary)
}

func TestProjectTruncatesLongDescription(t *testing.T) {
	long := strings.Repeat("a", 450)
	got := Project(models.AdzunaJob{Description: long})

	require.True(t, strings.HasSuffix(got.Description, "..."))
	body := strings.TrimSuffix(got.Description, "...")
	assert.Len(t, []rune(body), 200)
	assert.Equal(t, strings.Repeat("a", 200), body)
}

func TestProjectAppendsEllipsisToShortDescription(t *testing.T) {
	// The marker is part of the contract even when nothing was cut.
	got := Project(models.AdzunaJob{Description: "Short role"})
	assert.Equal(t, "Short role...", got.Description)
}

func TestProjectAllIsTotalAndOrderPreserving(t *testing.T) {
	jobs := make([]models.AdzunaJob, 7)
	for i := range jobs {
		jobs[i] = models.AdzunaJob{Title: fmt.Sprintf("Role %d", i)}
	}

	got := ProjectAll(jobs)

	require.Len(t, got, len(jobs))
	for i, summary := range got {
		assert.Equal(t, fmt.Sprintf("Role %d", i), summary.Title)
	}
}

func TestProjectAllEmptyInput(t *testing.T) {
	got := ProjectAll(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
