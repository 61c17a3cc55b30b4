package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mr2-hex/quivo-backend/adzuna"
	"github.com/Mr2-hex/quivo-backend/models"
)

// JobsHandler handles alternate-title lookups against a previously
// returned title list
type JobsHandler struct {
	searcher JobSearcher
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(searcher JobSearcher) *JobsHandler {
	return &JobsHandler{searcher: searcher}
}

// GetSpecificJob reruns the job search for one title picked by index
// from a client-supplied title list. All three fields are validated
// before any network call; an out-of-range index is a client error, not
// a panic.
func (h *JobsHandler) GetSpecificJob(c *gin.Context) {
	var req models.SpecificJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Index == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Index is required"})
		return
	}
	if strings.TrimSpace(req.Location) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Location is required"})
		return
	}
	if len(req.Keywords) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Keywords are required"})
		return
	}

	index := *req.Index
	if index < 0 || index >= len(req.Keywords) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Index is out of range"})
		return
	}

	jobs, err := h.searcher.Search(c.Request.Context(), req.Keywords[index], req.Location)
	if err != nil {
		respondError(c, "GetSpecificJob", err)
		return
	}

	c.JSON(http.StatusOK, models.SpecificJobResponse{Jobs: adzuna.ProjectAll(jobs)})
}
