package models

// UploadCVResponse represents the API response for a CV upload
type UploadCVResponse struct {
	Success    bool         `json:"success"`
	RawKeyword []string     `json:"rawKeyword"`
	Location   string       `json:"location"`
	Jobs       []JobSummary `json:"jobs"`
}

// SpecificJobRequest represents the request body for an alternate-title
// lookup. Index is a pointer so a missing field can be told apart from a
// legitimate index 0.
type SpecificJobRequest struct {
	Index    *int     `json:"index"`
	Location string   `json:"location"`
	Keywords []string `json:"keywords"`
}

// SpecificJobResponse represents the response for an alternate-title lookup
type SpecificJobResponse struct {
	Jobs []JobSummary `json:"jobs"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"Location is required"`
}

// MessageResponse carries the msg-keyed body used when the upload is
// rejected before the pipeline starts
type MessageResponse struct {
	Msg string `json:"msg" example:"Upload File to continue"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
