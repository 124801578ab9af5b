// Package present renders styled terminal output for parse results and errors.
package present

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"resume-parser/internal/resume"
)

var styles = struct {
	title      lipgloss.Style
	subtitle   lipgloss.Style
	info       lipgloss.Style
	success    lipgloss.Style
	warning    lipgloss.Style
	errText    lipgloss.Style
	hint       lipgloss.Style
	muted      lipgloss.Style
	fieldLabel lipgloss.Style
	fieldValue lipgloss.Style
	skillTag   lipgloss.Style
	panel      lipgloss.Style
	errPanel   lipgloss.Style
	divider    lipgloss.Style
}{
	title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("108")),
	subtitle:   lipgloss.NewStyle().Faint(true),
	info:       lipgloss.NewStyle().Foreground(lipgloss.Color("67")),
	success:    lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
	warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	errText:    lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
	hint:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("242")),
	muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	fieldLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("67")).Width(8),
	fieldValue: lipgloss.NewStyle().Foreground(lipgloss.Color("187")),
	skillTag:   lipgloss.NewStyle().Background(lipgloss.Color("236")).Padding(0, 1),
	panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("65")).Padding(1, 3),
	errPanel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("131")).Padding(1, 3),
	divider:    lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
}

// Banner prints the startup banner panel.
func Banner() {
	body := styles.title.Render("Resume Parser") + "\n" +
		styles.subtitle.Render("Powered by Gemini AI")
	fmt.Println(styles.panel.Render(body))
}

// Info prints an informational line.
func Info(msg string) {
	fmt.Printf("  %s  %s\n", styles.info.Render("i"), msg)
}

// Success prints a success line.
func Success(msg string) {
	fmt.Printf("  %s  %s\n", styles.success.Render("+"), msg)
}

// Warning prints a warning line.
func Warning(msg string) {
	fmt.Printf("  %s  %s\n", styles.warning.Render("!"), styles.warning.Render(msg))
}

// Divider prints a horizontal separator.
func Divider() {
	fmt.Println(styles.divider.Render(strings.Repeat("─", 60)))
}

// FileInfo prints the file name, size, and extension before processing.
func FileInfo(path string) {
	line := filepath.Base(path)
	if fi, err := os.Stat(path); err == nil {
		ext := strings.ToLower(filepath.Ext(path))
		line = fmt.Sprintf("%s  %s", line, styles.muted.Render(fmt.Sprintf("(%.1f KB | %s)", float64(fi.Size())/1024, ext)))
	}
	fmt.Printf("  %s\n", line)
}

// Result prints the parsed record as a bordered panel.
func Result(rec resume.Record) {
	fmt.Println()
	fmt.Println(RenderResult(rec))
}

// RenderResult builds the result panel without printing it.
func RenderResult(rec resume.Record) string {
	na := styles.muted.Render("N/A")

	name := na
	if rec.Name != "" {
		name = styles.fieldValue.Render(rec.Name)
	}
	email := na
	if rec.Email != "" {
		email = styles.fieldValue.Render(rec.Email)
	}
	skills := na
	if len(rec.Skills) > 0 {
		tags := make([]string, 0, len(rec.Skills))
		for _, s := range rec.Skills {
			tags = append(tags, styles.skillTag.Render(s))
		}
		skills = strings.Join(tags, "  ")
	}

	rows := []string{
		styles.fieldLabel.Render("Name") + "  " + name,
		styles.fieldLabel.Render("Email") + "  " + email,
		styles.fieldLabel.Render("Skills") + "  " + skills,
	}
	body := styles.title.Render("Parsed Resume") + "\n\n" + strings.Join(rows, "\n")
	return styles.panel.Render(body)
}

// ErrorPanel prints a prominent error panel with optional recovery hints.
func ErrorPanel(title string, message string, hints ...string) {
	fmt.Println()
	fmt.Println(RenderErrorPanel(title, message, hints...))
}

// RenderErrorPanel builds the error panel without printing it.
func RenderErrorPanel(title string, message string, hints ...string) string {
	parts := []string{
		styles.errText.Render("x " + title),
		"",
		message,
	}
	if len(hints) > 0 {
		parts = append(parts, "")
		for _, h := range hints {
			parts = append(parts, styles.hint.Render("> "+h))
		}
	}
	return styles.errPanel.Render(strings.Join(parts, "\n"))
}

// Usage prints a styled usage panel.
func Usage() {
	body := styles.title.Render("Usage") + "\n\n" +
		"resume-parser <file>      " + styles.muted.Render("Parse a single resume (.pdf or .docx)") + "\n" +
		"resume-parser <file> -v   " + styles.muted.Render("Echo log records to the terminal")
	fmt.Println()
	fmt.Println(styles.panel.Render(body))
}
