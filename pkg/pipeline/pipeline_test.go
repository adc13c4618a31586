package pipeline

import (
	"testing"

	apperrors "github.com/matzehuels/synsetree/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want INVALID_FORMAT", tt.format, apperrors.GetCode(err))
		}
	}
}

func TestValidateLayout(t *testing.T) {
	for _, ok := range []string{"", "twopi", "dot"} {
		if err := ValidateLayout(ok); err != nil {
			t.Errorf("ValidateLayout(%q) error = %v", ok, err)
		}
	}
	if err := ValidateLayout("neato"); err == nil {
		t.Error("ValidateLayout(neato) error = nil")
	}
}

func TestOptions_ValidateAndSetDefaults(t *testing.T) {
	opts := Options{Root: " dog.n.01 "}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Root != "dog.n.01" {
		t.Errorf("Root = %q, want trimmed", opts.Root)
	}
	if opts.Limit != DefaultLimit {
		t.Errorf("Limit = %d, want %d", opts.Limit, DefaultLimit)
	}
	if opts.Language != DefaultLanguage {
		t.Errorf("Language = %q, want %q", opts.Language, DefaultLanguage)
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults() error = %v", err)
	}
}

func TestOptions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code apperrors.Code
	}{
		{"empty root", Options{Root: "  "}, apperrors.ErrCodeEmptySelection},
		{"bad key", Options{Root: "a b"}, apperrors.ErrCodeInvalidInput},
		{"limit below minimum", Options{Root: "a", Limit: 4}, apperrors.ErrCodeInvalidInput},
		{"negative limit", Options{Root: "a", Limit: -1}, apperrors.ErrCodeInvalidInput},
		{"bad language", Options{Root: "a", Language: "English"}, apperrors.ErrCodeInvalidLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !apperrors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRenderOptions_Defaults(t *testing.T) {
	var opts RenderOptions
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Format != FormatSVG || opts.Scale != DefaultScale {
		t.Errorf("RenderOptions = %+v", opts)
	}
	for f := range ValidFormats {
		if ContentTypes[f] == "" {
			t.Errorf("ContentTypes[%q] missing", f)
		}
	}
}
