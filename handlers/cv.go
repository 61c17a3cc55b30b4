package handlers

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mr2-hex/quivo-backend/adzuna"
	"github.com/Mr2-hex/quivo-backend/models"
	"github.com/Mr2-hex/quivo-backend/tempstore"
)

// maxUploadSize caps uploads at 5 MiB, enforced before any bytes reach
// the scratch directory.
const maxUploadSize = 5 << 20

var allowedMediaTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// ResumeExtractor turns a materialized file into a section map
type ResumeExtractor interface {
	Extract(path string) (*models.ParsedResume, error)
}

// TitleInferrer extracts an ordered list of professional titles from a
// parsed resume
type TitleInferrer interface {
	InferTitles(ctx context.Context, resume *models.ParsedResume) ([]string, error)
}

// JobSearcher runs a single-title query against the job provider
type JobSearcher interface {
	Search(ctx context.Context, title, location string) ([]models.AdzunaJob, error)
}

// CVHandler handles CV upload and the resume-to-job-match pipeline
type CVHandler struct {
	store     *tempstore.Store
	extractor ResumeExtractor
	inferrer  TitleInferrer
	searcher  JobSearcher
}

// NewCVHandler creates a new CV handler
func NewCVHandler(store *tempstore.Store, extractor ResumeExtractor, inferrer TitleInferrer, searcher JobSearcher) *CVHandler {
	return &CVHandler{
		store:     store,
		extractor: extractor,
		inferrer:  inferrer,
		searcher:  searcher,
	}
}

// UploadCV runs the full pipeline: multipart upload → scratch file →
// extraction → title inference → job search → projected summaries.
func (h *CVHandler) UploadCV(c *gin.Context) {
	file, header, err := c.Request.FormFile("cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Msg: "Upload File to continue"})
		return
	}
	defer file.Close()

	location := c.PostForm("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Location is required"})
		return
	}

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "File exceeds the 5 MiB limit"})
		return
	}
	if !allowedMediaTypes[header.Header.Get("Content-Type")] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Only PDF, DOC, DOCX allowed"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	if len(data) > maxUploadSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "File exceeds the 5 MiB limit"})
		return
	}

	resume, err := h.parseUpload(data, header.Filename)
	if err != nil {
		respondError(c, "UploadCV", err)
		return
	}

	titles, err := h.inferrer.InferTitles(c.Request.Context(), resume)
	if err != nil {
		respondError(c, "UploadCV", err)
		return
	}

	jobs, err := h.searcher.Search(c.Request.Context(), titles[0], location)
	if err != nil {
		respondError(c, "UploadCV", err)
		return
	}

	c.JSON(http.StatusOK, models.UploadCVResponse{
		Success:    true,
		RawKeyword: titles,
		Location:   location,
		Jobs:       adzuna.ProjectAll(jobs),
	})
}

// parseUpload scopes the scratch file to the extraction step: the file
// is released on every exit path before inference starts.
func (h *CVHandler) parseUpload(data []byte, filename string) (*models.ParsedResume, error) {
	path, err := h.store.Materialize(data, filename)
	if err != nil {
		return nil, err
	}
	defer h.store.Release(path)

	log.Printf("[CVHandler] Parsing uploaded resume %s", filename)
	return h.extractor.Extract(path)
}
