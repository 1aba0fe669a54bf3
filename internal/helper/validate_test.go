package helper

import (
	"strings"
	"testing"
)

type contactForm struct {
	Name    string `validate:"required,min=2"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,min=10"`
}

func TestValidateStructValid(t *testing.T) {
	errs := ValidateStruct(contactForm{
		Name:    "Karim",
		Email:   "karim@example.com",
		Message: "I would like to study in Canada.",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStructFieldMessages(t *testing.T) {
	errs := ValidateStruct(contactForm{Email: "not-an-email", Message: "short"})
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %v", errs)
	}
	if errs["name"] != "name is required" {
		t.Errorf("name message = %q", errs["name"])
	}
	if errs["email"] != "must be a valid email address" {
		t.Errorf("email message = %q", errs["email"])
	}
	if !strings.Contains(errs["message"], "at least 10") {
		t.Errorf("message message = %q", errs["message"])
	}
}

func TestValidateStructUsesJSONFieldNames(t *testing.T) {
	type eventForm struct {
		StartsAt string `json:"starts_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	}
	errs := ValidateStruct(eventForm{StartsAt: "31-08-2026 10:00"})
	if errs["starts_at"] != "must be an RFC3339 timestamp" {
		t.Fatalf("starts_at message = %q (all: %v)", errs["starts_at"], errs)
	}
}

func TestValidateFile(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		size     int64
		wantErr  string
	}{
		{"ok pdf", "cv.pdf", 1024, ""},
		{"ok docx", "resume.DOCX", 4 * 1024 * 1024, ""},
		{"missing", "", 0, "cv is required"},
		{"zero bytes", "cv.pdf", 0, "cv is required"},
		{"too large", "cv.pdf", 6 * 1024 * 1024, "file too large (max 5MB)"},
		{"bad extension", "cv.exe", 1024, "only .pdf/.doc/.docx allowed"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			errs := CVConstraint.ValidateFile(c.filename, c.size)
			if c.wantErr == "" {
				if len(errs) != 0 {
					t.Fatalf("expected valid, got %v", errs)
				}
				return
			}
			if errs["cv"] != c.wantErr {
				t.Fatalf("got %q, want %q", errs["cv"], c.wantErr)
			}
		})
	}
}
