package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDocumentValidatorDefaults(t *testing.T) {
	validator := NewDocumentValidator(Limits{})

	impl, ok := validator.(*DocumentValidatorImpl)
	if !ok {
		t.Fatal("NewDocumentValidator should return *DocumentValidatorImpl")
	}
	if impl.limits.MaxPages != DefaultLimits.MaxPages {
		t.Errorf("Expected default MaxPages %d, got %d", DefaultLimits.MaxPages, impl.limits.MaxPages)
	}
	if impl.limits.MaxBytes != DefaultLimits.MaxBytes {
		t.Errorf("Expected default MaxBytes %d, got %d", DefaultLimits.MaxBytes, impl.limits.MaxBytes)
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	validator := NewDocumentValidator(Limits{})

	err := validator.ValidateDocument([]string{"Lunedì\nPranzo\nMela gr 200"})
	if err != nil {
		t.Errorf("Expected no error for a valid document, got %v", err)
	}
}

func TestValidateDocument_NoPages(t *testing.T) {
	validator := NewDocumentValidator(Limits{})

	err := validator.ValidateDocument(nil)
	if !errors.Is(err, ErrNoTextExtracted) {
		t.Errorf("Expected ErrNoTextExtracted for no pages, got %v", err)
	}
}

func TestValidateDocument_BlankPages(t *testing.T) {
	validator := NewDocumentValidator(Limits{})

	err := validator.ValidateDocument([]string{"", "  \n\t"})
	if !errors.Is(err, ErrNoTextExtracted) {
		t.Errorf("Expected ErrNoTextExtracted for blank pages, got %v", err)
	}
}

func TestValidateDocument_TooManyPages(t *testing.T) {
	validator := NewDocumentValidator(Limits{MaxPages: 2})

	err := validator.ValidateDocument([]string{"a", "b", "c"})
	if !errors.Is(err, ErrDocumentTooLarge) {
		t.Errorf("Expected ErrDocumentTooLarge for too many pages, got %v", err)
	}
}

func TestValidateDocument_TooManyBytes(t *testing.T) {
	validator := NewDocumentValidator(Limits{MaxBytes: 16})

	err := validator.ValidateDocument([]string{strings.Repeat("a", 17)})
	if !errors.Is(err, ErrDocumentTooLarge) {
		t.Errorf("Expected ErrDocumentTooLarge for oversized text, got %v", err)
	}
}

func TestValidateDocument_InvalidEncoding(t *testing.T) {
	validator := NewDocumentValidator(Limits{})

	err := validator.ValidateDocument([]string{"ok", string([]byte{0xff, 0xfe, 0xfd})})
	if !errors.Is(err, ErrDocumentUnreadable) {
		t.Errorf("Expected ErrDocumentUnreadable for invalid encoding, got %v", err)
	}
}

func TestValidateInput(t *testing.T) {
	validator := NewDocumentValidator(Limits{})

	testCases := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"valid input", "Mela gr 200", false},
		{"tab allowed", "Mela\tgr 200", false},
		{"empty input", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 201), true},
		{"control character", "Mela\x00gr 200", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateInput(tc.input)
			if tc.expectErr && err == nil {
				t.Errorf("Expected error for %q", tc.input)
			}
			if !tc.expectErr && err != nil {
				t.Errorf("Expected no error for %q, got %v", tc.input, err)
			}
		})
	}
}
