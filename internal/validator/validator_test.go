package validator

import (
	"net/url"
	"testing"
)

func TestParseLinkQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantValid    bool
		wantPages    int
		wantPage     int
		wantMaxLinks int
		wantField    string
	}{
		{"valid query", "pages=20&page=3&max_links=9", true, 20, 2, 9, ""},
		{"default max links", "pages=20&page=1", true, 20, 0, 13, ""},
		{"missing page", "pages=20", true, 20, 0, 13, ""},
		{"malformed page", "pages=20&page=abc", true, 20, 0, 13, ""},
		{"negative page", "pages=20&page=-4", true, 20, 0, 13, ""},
		{"negative pages clamped", "pages=-5", true, 0, 0, 13, ""},
		{"negative max links clamped", "pages=5&max_links=-1", true, 5, 0, 0, ""},
		{"missing pages", "page=2", false, 0, 1, 13, "pages"},
		{"malformed pages", "pages=ten", false, 0, 0, 13, "pages"},
		{"malformed max links", "pages=10&max_links=x", false, 10, 0, 13, "max_links"},
		{"too many pages", "pages=1000001", false, 1000001, 0, 13, "pages"},
		{"too many links", "pages=10&max_links=1001", false, 10, 0, 1001, "max_links"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}

			q, result := ParseLinkQuery(values, 13)
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
			if q.Pages != tt.wantPages || q.Page != tt.wantPage || q.MaxLinks != tt.wantMaxLinks {
				t.Errorf("got %+v, want pages=%d page=%d max_links=%d", q, tt.wantPages, tt.wantPage, tt.wantMaxLinks)
			}
			if tt.wantField != "" {
				if len(result.Errors) == 0 || result.Errors[0].Field != tt.wantField {
					t.Errorf("expected error on field %q, got %v", tt.wantField, result.Errors)
				}
			}
		})
	}
}

func TestResult(t *testing.T) {
	type sample struct {
		Env  string `env:"APP_ENV" validate:"oneof=dev prod"`
		Port string `env:"PORT" validate:"required"`
	}

	result := Result(Validate(sample{Env: "staging"}))
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", result.Errors)
	}
	if result.Errors[0].Field != "APP_ENV" {
		t.Errorf("expected field APP_ENV, got %s", result.Errors[0].Field)
	}
	if result.Error() == "" {
		t.Error("expected a non-empty error string")
	}

	if ok := Result(Validate(sample{Env: "dev", Port: "8080"})); !ok.Valid {
		t.Errorf("expected valid result, got %v", ok.Errors)
	}
}
