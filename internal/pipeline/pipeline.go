// Package pipeline wires extraction, verification, and AI field extraction
// into the single linear chain a run executes.
package pipeline

import (
	"context"

	"resume-parser/internal/extract"
	"resume-parser/internal/resume"
	"resume-parser/internal/shared/telemetry"
)

// Pipeline processes one resume file end to end.
type Pipeline struct {
	extractor *resume.Extractor
	log       *telemetry.Logger
}

// New builds a pipeline around the given extractor and run logger.
func New(extractor *resume.Extractor, log *telemetry.Logger) *Pipeline {
	return &Pipeline{extractor: extractor, log: log}
}

// Run extracts text from the file at path, verifies it, and asks the model
// for the structured fields. Warnings are non-fatal quality findings worth
// surfacing to the user.
func (p *Pipeline) Run(ctx context.Context, path string) (resume.Record, []string, error) {
	text, err := extract.Text(path)
	if err != nil {
		p.log.Error("text extraction failed", map[string]any{"file": path, "err": err.Error()})
		return resume.Record{}, nil, err
	}
	p.log.Info("text extracted", map[string]any{"file": path, "chars": len(text)})

	var warnings []string
	if report := extract.Verify(text); !report.OK() {
		warnings = append(warnings, report.Issues()...)
		p.log.Warn("text verification found issues", map[string]any{"issues": report.Issues()})
	} else {
		p.log.Debug("text verification passed", nil)
	}

	rec, err := p.extractor.Extract(ctx, text)
	if err != nil {
		p.log.Error("field extraction failed", map[string]any{"err": err.Error()})
		return resume.Record{}, warnings, err
	}
	p.log.Info("fields extracted", map[string]any{
		"name":   rec.Name,
		"email":  rec.Email,
		"skills": len(rec.Skills),
	})

	if rec.Email != "" && !resume.PlausibleEmail(rec.Email) {
		warnings = append(warnings, "extracted email does not look like a valid address: "+rec.Email)
		p.log.Warn("implausible email", map[string]any{"email": rec.Email})
	}

	return rec, warnings, nil
}
