package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-parser/internal/extract"
	"resume-parser/internal/llm"
	"resume-parser/internal/llm/gemini"
	"resume-parser/internal/pipeline"
	"resume-parser/internal/present"
	"resume-parser/internal/resume"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/telemetry"
)

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume-parser <file>",
		Short: "Parse resumes and extract structured data using Gemini AI",
		Long: `resume-parser extracts the candidate's name, email address, and skills
from a single resume file (.pdf or .docx) by sending the extracted text
to the Gemini API and parsing its structured reply.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show log records in the terminal")
	return cmd
}

func run(ctx context.Context, args []string) error {
	cfg := config.Load()

	log, err := telemetry.New(cfg.LogDir, verbose)
	if err != nil {
		present.ErrorPanel("Logging Error", err.Error())
		return err
	}
	defer log.Close()

	present.Banner()
	fmt.Println()

	if len(args) == 0 {
		err := errors.New("no file provided")
		log.Error("run aborted", map[string]any{"err": err.Error()})
		present.ErrorPanel("No file provided", "Please specify a resume file to parse.",
			"Run: resume-parser <resume.pdf>",
			"Supported formats: .pdf, .docx")
		present.Usage()
		return err
	}
	if len(args) > 1 {
		err := fmt.Errorf("expected one file, got %d arguments", len(args))
		log.Error("run aborted", map[string]any{"err": err.Error()})
		present.ErrorPanel("Too many arguments", "Only one resume can be parsed per run.",
			"Run: resume-parser <resume.pdf>",
			"Quote paths that contain spaces: resume-parser \"My Resume.pdf\"")
		present.Usage()
		return err
	}
	path := args[0]
	log.Info("run started", map[string]any{"file": path, "verbose": verbose})

	fi, err := os.Stat(path)
	if err != nil {
		log.Error("file not found", map[string]any{"file": path})
		present.ErrorPanel("File not found", fmt.Sprintf("%q does not exist.", path),
			"Check the file path for typos.",
			"Use a relative or absolute path to the resume file.")
		return err
	}
	if fi.IsDir() {
		err := fmt.Errorf("%q is a directory, not a file", path)
		log.Error("not a file", map[string]any{"file": path})
		present.ErrorPanel("Not a file", err.Error())
		return err
	}

	// Validate the API key before touching the file so a missing key fails
	// deterministically first.
	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.Timeout)
	if err != nil {
		reportError(log, err)
		return err
	}
	log.Debug("gemini client ready", map[string]any{"model": client.Model()})

	present.Info("Processing resume")
	present.FileInfo(path)
	present.Divider()
	present.Info("Parsing resume and extracting fields...")

	pipe := pipeline.New(resume.NewExtractor(client), log)
	rec, warnings, err := pipe.Run(ctx, path)
	if err != nil {
		reportError(log, err)
		return err
	}

	for _, w := range warnings {
		present.Warning(w)
	}
	fmt.Println()
	present.Success("Resume parsed successfully!")
	present.Result(rec)
	log.Info("run complete", nil)
	return nil
}

// reportError logs the failure and renders the matching error panel with
// recovery hints.
func reportError(log *telemetry.Logger, err error) {
	log.Error("run failed", map[string]any{"err": err.Error()})

	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		present.ErrorPanel("Missing API Key", err.Error(),
			"Create a .env file in the project root.",
			"Add: GEMINI_API_KEY=your_key_here",
			"Get a key at https://aistudio.google.com/apikey")
	case errors.Is(err, extract.ErrUnsupportedFormat):
		present.ErrorPanel("Unsupported format", err.Error(),
			"Supported formats: .pdf, .docx")
	case errors.Is(err, extract.ErrAccessDenied):
		present.ErrorPanel("Access Denied", err.Error(),
			"If the PDF is password-protected, unlock it first.",
			"Check file permissions with: ls -la <file>")
	case errors.Is(err, extract.ErrNoText):
		present.ErrorPanel("Extraction Failed", err.Error(),
			"The file may be a scanned image (not machine-readable text).",
			"Try re-exporting the resume as a text-based PDF.")
	case errors.Is(err, extract.ErrBadDocument):
		present.ErrorPanel("Parse Error", err.Error(),
			"The file may be corrupt, try re-exporting it.",
			"For PDFs: re-save with a tool like Preview or Adobe.",
			"For .docx: re-save from Word or Google Docs.")
	case errors.Is(err, resume.ErrMalformedResponse), errors.Is(err, llm.ErrEmptyResponse):
		present.ErrorPanel("Parse Error", err.Error(),
			"The AI returned an unexpected format. Try again.")
	case errors.Is(err, llm.ErrConnection):
		present.ErrorPanel("Connection Failed", err.Error(),
			"Check your internet connection and try again.")
	case errors.Is(err, llm.ErrUpstream):
		present.ErrorPanel("AI Service Error", err.Error(),
			"The Gemini API may be temporarily down or over quota.",
			"Verify your GEMINI_API_KEY is valid.")
	case errors.Is(err, context.Canceled):
		present.Warning("Interrupted by user.")
	case errors.Is(err, os.ErrNotExist):
		present.ErrorPanel("File not found", err.Error())
	default:
		present.ErrorPanel("Unexpected Error", err.Error(),
			"Check the latest log file in "+log.Path()+" for details.")
	}
}
