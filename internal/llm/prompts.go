package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/combined.txt
	promptCombined string
	//go:embed prompts/name.txt
	promptName string
	//go:embed prompts/email.txt
	promptEmail string
	//go:embed prompts/skills.txt
	promptSkills string
)

// Field names accepted by BuildFieldPrompt.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldSkills = "skills"
)

// BuildCombinedPrompt returns the prompt asking for all three fields in one call.
func BuildCombinedPrompt(resumeText string) string {
	return fill(promptCombined, resumeText)
}

// BuildFieldPrompt returns the single-field prompt for the given field, and
// whether the field was recognized.
func BuildFieldPrompt(field string, resumeText string) (string, bool) {
	switch field {
	case FieldName:
		return fill(promptName, resumeText), true
	case FieldEmail:
		return fill(promptEmail, resumeText), true
	case FieldSkills:
		return fill(promptSkills, resumeText), true
	default:
		return "", false
	}
}

func fill(template string, resumeText string) string {
	replacer := strings.NewReplacer("{{RESUME_TEXT}}", resumeText)
	return strings.TrimSpace(replacer.Replace(template))
}
