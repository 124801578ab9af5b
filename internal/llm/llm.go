package llm

import (
	"context"
	"errors"
)

// Generator abstracts the hosted model behind a single prompt-in, text-out call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrMissingAPIKey indicates the API key is absent from the environment.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

	// ErrConnection indicates the model endpoint could not be reached.
	ErrConnection = errors.New("could not reach the AI service")

	// ErrUpstream indicates the model returned an error response (quota, auth, 5xx).
	ErrUpstream = errors.New("AI service error")

	// ErrEmptyResponse indicates the model returned no usable text.
	ErrEmptyResponse = errors.New("AI service returned an empty response")
)
