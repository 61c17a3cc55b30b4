package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr2-hex/quivo-backend/errs"
	"github.com/Mr2-hex/quivo-backend/models"
)

func newJobsRouter(searcher *stubSearcher) *gin.Engine {
	router := gin.New()
	router.POST("/getSpecificJob", NewJobsHandler(searcher).GetSpecificJob)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/getSpecificJob", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetSpecificJobValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed body", `{"index": "one"}`, "Invalid request body"},
		{"missing index", `{"location": "Berlin", "keywords": ["A", "B"]}`, "Index is required"},
		{"missing location", `{"index": 0, "keywords": ["A", "B"]}`, "Location is required"},
		{"blank location", `{"index": 0, "location": "  ", "keywords": ["A", "B"]}`, "Location is required"},
		{"missing keywords", `{"index": 0, "location": "Berlin"}`, "Keywords are required"},
		{"empty keywords", `{"index": 0, "location": "Berlin", "keywords": []}`, "Keywords are required"},
		{"index past the end", `{"index": 5, "location": "Berlin", "keywords": ["A", "B"]}`, "Index is out of range"},
		{"negative index", `{"index": -1, "location": "Berlin", "keywords": ["A", "B"]}`, "Index is out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &stubSearcher{}
			rec := postJSON(t, newJobsRouter(searcher), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
			assert.Empty(t, searcher.titles, "validation must short-circuit before the provider call")
		})
	}
}

func TestGetSpecificJobSearchesSelectedTitle(t *testing.T) {
	searcher := &stubSearcher{jobs: []models.AdzunaJob{
		{
			Title:       "UX Designer",
			Company:     models.AdzunaCompany{DisplayName: "Globex"},
			Location:    models.AdzunaLocation{DisplayName: "Berlin"},
			Description: "Design flows",
			SalaryText:  "€55k",
			RedirectURL: "https://example.com/jobs/9",
		},
	}}

	rec := postJSON(t, newJobsRouter(searcher), `{"index": 1, "location": "Berlin", "keywords": ["Graphic Designer", "UX Designer"]}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"UX Designer"}, searcher.titles)
	assert.Equal(t, []string{"Berlin"}, searcher.locations)

	var resp models.SpecificJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Globex", resp.Jobs[0].Company)
	assert.Equal(t, "€55k", resp.Jobs[0].Salary)
	assert.Equal(t, "Design flows...", resp.Jobs[0].Description)
}

func TestGetSpecificJobIndexZero(t *testing.T) {
	searcher := &stubSearcher{jobs: []models.AdzunaJob{}}

	rec := postJSON(t, newJobsRouter(searcher), `{"index": 0, "location": "Berlin", "keywords": ["Graphic Designer"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Graphic Designer"}, searcher.titles)

	var resp models.SpecificJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Jobs)
	assert.Empty(t, resp.Jobs)
}

func TestGetSpecificJobProviderFailureIs500(t *testing.T) {
	searcher := &stubSearcher{err: errs.New(errs.KindUpstream, "Adzuna API error (status 503)")}

	rec := postJSON(t, newJobsRouter(searcher), `{"index": 0, "location": "Berlin", "keywords": ["Designer"]}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Adzuna API error")
}
