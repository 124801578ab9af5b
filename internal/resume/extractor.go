package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resume-parser/internal/llm"
)

// ErrEmptyText indicates there is no resume text to extract from.
var ErrEmptyText = errors.New("cannot extract fields from empty resume text")

// Extractor turns resume text into a Record by prompting a generator and
// decoding its structured reply.
type Extractor struct {
	gen      llm.Generator
	perField bool
}

// NewExtractor builds an extractor that retrieves all fields in a single API
// call. This is the default: one call instead of three keeps free-tier
// per-minute quotas comfortable.
func NewExtractor(gen llm.Generator) *Extractor {
	return &Extractor{gen: gen}
}

// NewPerFieldExtractor builds an extractor that issues one call per field.
func NewPerFieldExtractor(gen llm.Generator) *Extractor {
	return &Extractor{gen: gen, perField: true}
}

// Extract prompts the model and assembles a Record from its reply.
func (e *Extractor) Extract(ctx context.Context, resumeText string) (Record, error) {
	if strings.TrimSpace(resumeText) == "" {
		return Record{}, ErrEmptyText
	}
	if e.perField {
		return e.extractPerField(ctx, resumeText)
	}
	return e.extractCombined(ctx, resumeText)
}

func (e *Extractor) extractCombined(ctx context.Context, resumeText string) (Record, error) {
	raw, err := e.gen.Generate(ctx, llm.BuildCombinedPrompt(resumeText))
	if err != nil {
		return Record{}, err
	}
	rec, err := DecodeRecord(raw)
	if err != nil {
		return Record{}, err
	}
	rec.Skills = NormalizeSkills(rec.Skills)
	return rec, nil
}

func (e *Extractor) extractPerField(ctx context.Context, resumeText string) (Record, error) {
	var rec Record

	name, err := e.stringField(ctx, llm.FieldName, resumeText)
	if err != nil {
		return Record{}, err
	}
	rec.Name = name

	email, err := e.stringField(ctx, llm.FieldEmail, resumeText)
	if err != nil {
		return Record{}, err
	}
	rec.Email = email

	prompt, _ := llm.BuildFieldPrompt(llm.FieldSkills, resumeText)
	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return Record{}, err
	}
	val, err := DecodeField(raw, llm.FieldSkills)
	if err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal(val, &rec.Skills); err != nil {
		return Record{}, fmt.Errorf("%w: skills is not a string list", ErrMalformedResponse)
	}
	rec.Skills = NormalizeSkills(rec.Skills)

	return rec, nil
}

func (e *Extractor) stringField(ctx context.Context, field string, resumeText string) (string, error) {
	prompt, _ := llm.BuildFieldPrompt(field, resumeText)
	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	val, err := DecodeField(raw, field)
	if err != nil {
		return "", err
	}
	var out string
	if err := json.Unmarshal(val, &out); err != nil {
		return "", fmt.Errorf("%w: %s is not a string", ErrMalformedResponse, field)
	}
	return out, nil
}
