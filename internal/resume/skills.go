package resume

import "strings"

// NormalizeSkills trims entries and drops case-insensitive duplicates while
// preserving the model's ordering and the first-seen casing of each skill.
func NormalizeSkills(skills []string) []string {
	if len(skills) == 0 {
		return skills
	}
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
