package resume

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator returns canned replies keyed by a substring of the prompt.
type fakeGenerator struct {
	replies map[string]string
	err     error
	calls   int
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	for marker, reply := range f.replies {
		if strings.Contains(prompt, marker) {
			return reply, nil
		}
	}
	return "", errors.New("no canned reply for prompt")
}

func TestExtractor_Combined(t *testing.T) {
	gen := &fakeGenerator{replies: map[string]string{
		"full name, email address": `{"name": "Jane Doe", "email": "jane@example.com", "skills": ["Go", "SQL"]}`,
	}}

	rec, err := NewExtractor(gen).Extract(context.Background(), "Jane Doe resume text")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "jane@example.com", rec.Email)
	assert.Equal(t, []string{"Go", "SQL"}, rec.Skills)
	assert.Equal(t, 1, gen.calls, "combined mode should make exactly one call")
}

func TestExtractor_PerField(t *testing.T) {
	gen := &fakeGenerator{replies: map[string]string{
		"full name from":      `{"name": "Jane Doe"}`,
		"email address from":  `{"email": "jane@example.com"}`,
		"professional skills": `{"skills": ["Go"]}`,
	}}

	rec, err := NewPerFieldExtractor(gen).Extract(context.Background(), "Jane Doe resume text")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "jane@example.com", rec.Email)
	assert.Equal(t, []string{"Go"}, rec.Skills)
	assert.Equal(t, 3, gen.calls, "per-field mode should make three calls")
}

func TestExtractor_EmptyText(t *testing.T) {
	gen := &fakeGenerator{}
	_, err := NewExtractor(gen).Extract(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Zero(t, gen.calls, "no API call for empty text")
}

func TestExtractor_GeneratorError(t *testing.T) {
	boom := errors.New("boom")
	gen := &fakeGenerator{err: boom}
	_, err := NewExtractor(gen).Extract(context.Background(), "resume text")
	assert.ErrorIs(t, err, boom)
}

func TestExtractor_MalformedReply(t *testing.T) {
	gen := &fakeGenerator{replies: map[string]string{
		"full name, email address": `{"name": "Jane Doe", "email": "jane@example.com"}`,
	}}
	_, err := NewExtractor(gen).Extract(context.Background(), "resume text")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
