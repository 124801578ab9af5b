package resume

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeRecord(t *testing.T) {
	raw := `{"name": "Jane Doe", "email": "jane@example.com", "skills": ["Go", "SQL", "Docker"]}`
	rec, err := DecodeRecord(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Name != "Jane Doe" || rec.Email != "jane@example.com" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if len(rec.Skills) != 3 || rec.Skills[0] != "Go" || rec.Skills[2] != "Docker" {
		t.Fatalf("unexpected skills: %v", rec.Skills)
	}
}

func TestDecodeRecord_CodeFence(t *testing.T) {
	raw := "```json\n{\"name\": \"Jane Doe\", \"email\": \"jane@example.com\", \"skills\": []}\n```"
	rec, err := DecodeRecord(raw)
	if err != nil {
		t.Fatalf("decode fenced reply: %v", err)
	}
	if rec.Name != "Jane Doe" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestDecodeRecord_MissingSkills(t *testing.T) {
	raw := `{"name": "Jane Doe", "email": "jane@example.com"}`
	_, err := DecodeRecord(raw)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
	if !strings.Contains(err.Error(), "skills") {
		t.Fatalf("error should name the missing field: %v", err)
	}
}

func TestDecodeRecord_InvalidJSON(t *testing.T) {
	_, err := DecodeRecord("The candidate is Jane Doe.")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestDecodeRecord_WrongTypes(t *testing.T) {
	raw := `{"name": "Jane", "email": "j@e.com", "skills": "Go, SQL"}`
	_, err := DecodeRecord(raw)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestDecodeField(t *testing.T) {
	val, err := DecodeField(`{"email": "jane@example.com"}`, "email")
	if err != nil {
		t.Fatalf("decode field: %v", err)
	}
	if string(val) != `"jane@example.com"` {
		t.Fatalf("unexpected value: %s", val)
	}

	_, err = DecodeField(`{"mail": "jane@example.com"}`, "email")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestPlausibleEmail(t *testing.T) {
	cases := map[string]bool{
		"jane@example.com":   true,
		" jane@example.com ": true,
		"jane@example":       false,
		"not-an-email":       false,
		"":                   false,
	}
	for in, want := range cases {
		if got := PlausibleEmail(in); got != want {
			t.Fatalf("PlausibleEmail(%q) = %v, want %v", in, got, want)
		}
	}
}
