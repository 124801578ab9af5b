package resume

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedResponse indicates the model reply did not match the expected
// JSON contract.
var ErrMalformedResponse = errors.New("malformed AI response")

// DecodeRecord parses a combined-extraction reply into a Record. The reply
// must be a JSON object carrying all of name, email, and skills.
func DecodeRecord(raw string) (Record, error) {
	fields, err := decodeEnvelope(raw)
	if err != nil {
		return Record{}, err
	}

	var missing []string
	for _, key := range []string{"name", "email", "skills"} {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Record{}, fmt.Errorf("%w: missing fields: %s", ErrMalformedResponse, strings.Join(missing, ", "))
	}

	var rec Record
	if err := json.Unmarshal(fields["name"], &rec.Name); err != nil {
		return Record{}, fmt.Errorf("%w: name is not a string", ErrMalformedResponse)
	}
	if err := json.Unmarshal(fields["email"], &rec.Email); err != nil {
		return Record{}, fmt.Errorf("%w: email is not a string", ErrMalformedResponse)
	}
	if err := json.Unmarshal(fields["skills"], &rec.Skills); err != nil {
		return Record{}, fmt.Errorf("%w: skills is not a string list", ErrMalformedResponse)
	}
	return rec, nil
}

// DecodeField parses a single-field reply and returns the raw JSON value for key.
func DecodeField(raw string, key string) (json.RawMessage, error) {
	fields, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}
	val, ok := fields[key]
	if !ok {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: missing field %q (got: %s)", ErrMalformedResponse, key, strings.Join(keys, ", "))
	}
	return val, nil
}

func decodeEnvelope(raw string) (map[string]json.RawMessage, error) {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %s", ErrMalformedResponse, truncate(cleaned, 200))
	}
	return fields, nil
}

// stripCodeFence removes a surrounding markdown code fence, which some models
// add despite the prompt asking for bare JSON.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
