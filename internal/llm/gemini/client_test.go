package gemini

import (
	"context"
	"errors"
	"testing"

	"resume-parser/internal/llm"
)

func TestNewClient_MissingKey(t *testing.T) {
	_, err := NewClient(context.Background(), "  ", "", 0)
	if !errors.Is(err, llm.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNewClient_DefaultModel(t *testing.T) {
	c, err := NewClient(context.Background(), "test-key", "", 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if c.Model() != DefaultModel {
		t.Fatalf("expected default model %q, got %q", DefaultModel, c.Model())
	}
}

func TestNewClient_ModelOverride(t *testing.T) {
	c, err := NewClient(context.Background(), "test-key", "gemini-2.5-flash", 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if c.Model() != "gemini-2.5-flash" {
		t.Fatalf("unexpected model %q", c.Model())
	}
}
