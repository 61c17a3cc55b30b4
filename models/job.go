package models

// AdzunaSearchResponse represents one page of the Adzuna search API response
type AdzunaSearchResponse struct {
	Results []AdzunaJob `json:"results"`
	Count   int         `json:"count"`
}

// AdzunaJob represents a raw job record as returned by Adzuna
type AdzunaJob struct {
	Title       string         `json:"title"`
	Company     AdzunaCompany  `json:"company"`
	Location    AdzunaLocation `json:"location"`
	Description string         `json:"description"`
	SalaryText  string         `json:"salary_text"`
	RedirectURL string         `json:"redirect_url"`
}

// AdzunaCompany is the nested company object of a raw record
type AdzunaCompany struct {
	DisplayName string `json:"display_name"`
}

// AdzunaLocation is the nested location object of a raw record
type AdzunaLocation struct {
	DisplayName string `json:"display_name"`
}

// JobSummary is the public shape a raw record is projected into.
// Salary falls back to "Not specified" and the description is truncated
// to 200 characters with a trailing ellipsis.
type JobSummary struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
	URL         string `json:"url"`
}
