package adzuna

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Mr2-hex/quivo-backend/config"
	"github.com/Mr2-hex/quivo-backend/errs"
	"github.com/Mr2-hex/quivo-backend/models"
	"github.com/Mr2-hex/quivo-backend/utils"
)

const defaultBaseURL = "https://api.adzuna.com/v1/api/jobs"

// One page of ten, ranked by the provider. Its relevance ordering is
// authoritative; results are never re-sorted locally.
const (
	resultsPerPage = 10
	sortBy         = "relevance"
)

// Client searches the Adzuna job API
type Client struct {
	appID   string
	appKey  string
	country string
	baseURL string
	client  *http.Client
}

// NewClient creates a new Adzuna search client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		appID:   cfg.AdzunaAppID,
		appKey:  cfg.AdzunaAppKey,
		country: cfg.AdzunaCountry,
		baseURL: defaultBaseURL,
		client:  utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second),
	}
}

// Normalize trims a free-text title and joins its words with "+", the
// provider's word-joiner for multi-word query terms. Idempotent:
// normalizing an already-normalized token yields the same token.
func Normalize(title string) string {
	return strings.Join(strings.Fields(title), "+")
}

// Search runs one query against Adzuna with the normalized title as the
// "what" term and the caller's location as "where". Location is
// mandatory client input and is checked before any network I/O. An
// empty result set is not an error.
func (c *Client) Search(ctx context.Context, title, location string) ([]models.AdzunaJob, error) {
	if strings.TrimSpace(location) == "" {
		return nil, errs.New(errs.KindValidation, "Location is required")
	}
	words := strings.Fields(title)
	if len(words) == 0 {
		return nil, errs.New(errs.KindValidation, "Job title is required")
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	// Encode renders the spaces between words as the provider's "+"
	// joiner and percent-escapes everything else in the title.
	params.Set("what", strings.Join(words, " "))
	params.Set("where", location)
	params.Set("results_per_page", fmt.Sprintf("%d", resultsPerPage))
	params.Set("sort_by", sortBy)

	reqURL := fmt.Sprintf("%s/%s/search/1?%s", c.baseURL, c.country, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errs.Wrap(errs.KindUnexpected, "failed to create search request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, errs.Wrap(errs.KindTimeout, "job search timed out", err)
		}
		return nil, errs.Wrap(errs.KindUpstream, "job search request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errs.Newf(errs.KindUpstream, "Adzuna API error (status %d): %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(errs.KindUpstream, "failed to read search response", err)
	}

	var searchResp models.AdzunaSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, errs.Wrap(errs.KindUpstream, "failed to parse search response", err)
	}

	log.Printf("[Adzuna] Found %d jobs for %q in %q", len(searchResp.Results), Normalize(title), location)

	if searchResp.Results == nil {
		return []models.AdzunaJob{}, nil
	}
	return searchResp.Results, nil
}
