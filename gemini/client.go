package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"

	"github.com/Mr2-hex/quivo-backend/config"
	"github.com/Mr2-hex/quivo-backend/errs"
	"github.com/Mr2-hex/quivo-backend/models"
)

// Client wraps the Gemini API client for title inference
type Client struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// NewClient creates a new Gemini client authenticated with an AI Studio
// API key.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:    client,
		modelName: cfg.GeminiModel,
		timeout:   time.Duration(cfg.LLMTimeoutSeconds) * time.Second,
	}, nil
}

// InferTitles asks the model for the candidate's professional titles and
// parses the response into an ordered list. Element 0 is the primary
// title; the rest are related alternates. The model call is bounded by
// the configured timeout, and any deviation from the expected JSON
// string array fails the pipeline rather than being patched up.
func (c *Client) InferTitles(ctx context.Context, resume *models.ParsedResume) ([]string, error) {
	prompt := buildPrompt(resume)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, errs.Wrap(errs.KindTimeout, "title inference timed out", err)
		}
		return nil, errs.Wrap(errs.KindUpstream, "title inference request failed", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, errs.New(errs.KindUpstream, "no response from Gemini")
	}

	titles, err := ParseTitleCandidates(text)
	if err != nil {
		log.Printf("[Gemini] Rejected model output: %s", text)
		return nil, err
	}

	log.Printf("[Gemini] Inferred titles: %v", titles)
	return titles, nil
}
