package resume

import (
	"regexp"
	"strings"
)

// Record is the structured data extracted from one resume. It is built once
// per run, displayed, and discarded.
type Record struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
}

// String renders the record as plain key/value lines (used in logs).
func (r Record) String() string {
	skills := "N/A"
	if len(r.Skills) > 0 {
		skills = strings.Join(r.Skills, ", ")
	}
	return "Name: " + r.Name + "\nEmail: " + r.Email + "\nSkills: " + skills
}

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// PlausibleEmail reports whether s looks like an email address. Best-effort
// only; an implausible value is worth a warning, never a failure.
func PlausibleEmail(s string) bool {
	return emailShape.MatchString(strings.TrimSpace(s))
}
