package extract

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	minTextLength     = 200
	minPrintableRatio = 0.8
)

var sectionKeywords = []string{"experience", "education", "skills", "summary", "projects"}

// Report holds the outcome of the extracted-text quality checks.
type Report struct {
	Empty           bool
	TooShort        bool
	MissingKeywords bool
	LowPrintable    bool
}

// OK reports whether no quality issue was detected.
func (r Report) OK() bool {
	return !(r.Empty || r.TooShort || r.MissingKeywords || r.LowPrintable)
}

// Issues returns human-readable descriptions of the detected problems.
func (r Report) Issues() []string {
	var out []string
	if r.Empty {
		out = append(out, "extracted text is empty")
	}
	if r.TooShort {
		out = append(out, fmt.Sprintf("extracted text is shorter than %d characters", minTextLength))
	}
	if r.MissingKeywords {
		out = append(out, fmt.Sprintf("none of the expected resume sections found (%s)", strings.Join(sectionKeywords, ", ")))
	}
	if r.LowPrintable {
		out = append(out, fmt.Sprintf("printable-character ratio is below %.0f%%", minPrintableRatio*100))
	}
	return out
}

// Verify runs quality checks on extracted resume text. Only the empty check is
// fatal for callers; the rest flag likely extraction problems worth logging.
func Verify(text string) Report {
	var r Report

	if strings.TrimSpace(text) == "" {
		r.Empty = true
		return r
	}

	if len(text) < minTextLength {
		r.TooShort = true
	}

	lower := strings.ToLower(text)
	found := false
	for _, kw := range sectionKeywords {
		if strings.Contains(lower, kw) {
			found = true
			break
		}
	}
	if !found {
		r.MissingKeywords = true
	}

	printable, total := 0, 0
	for _, c := range text {
		total++
		if unicode.IsPrint(c) || c == '\n' || c == '\t' || c == '\r' {
			printable++
		}
	}
	if float64(printable)/float64(total) < minPrintableRatio {
		r.LowPrintable = true
	}

	return r
}
