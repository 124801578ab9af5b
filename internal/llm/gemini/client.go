package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"resume-parser/internal/llm"
)

// DefaultModel is used when no model override is configured.
const DefaultModel = "gemini-flash-latest"

// Client implements llm.Generator against the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini client. The key is validated before any other
// work so a missing key fails the run deterministically up front.
func NewClient(ctx context.Context, apiKey string, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, llm.ErrMissingAPIKey
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrConnection, err)
	}
	return &Client{client: client, model: model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate sends a single prompt and returns the raw response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w (code %d): %s", llm.ErrUpstream, apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("%w: %v", llm.ErrConnection, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", llm.ErrEmptyResponse
	}
	return text, nil
}
