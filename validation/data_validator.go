// Package validation provides document- and input-level validation for the
// diet document engine.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leooon3/mydiet-api/interfaces"
	"github.com/leooon3/mydiet-api/logging"
)

// Document-level failures are fatal for the whole parse. Callers distinguish
// the three classes with errors.Is.
var (
	ErrDocumentTooLarge   = errors.New("document too large")
	ErrDocumentUnreadable = errors.New("document unreadable")
	ErrNoTextExtracted    = errors.New("no text extracted from document")
)

// Limits bounds worst-case parse latency. Exceeding a limit is a hard
// document-level failure, never a partial result.
type Limits struct {
	MaxPages int
	MaxBytes int64
}

// DefaultLimits matches the boundary caps of the upstream PDF extraction
// step: 50 pages, 10 MiB.
var DefaultLimits = Limits{
	MaxPages: 50,
	MaxBytes: 10 * 1024 * 1024,
}

// DocumentValidatorImpl implements the interfaces.DocumentValidator interface
type DocumentValidatorImpl struct {
	limits Limits
}

// NewDocumentValidator creates a validator with the given limits; zero
// fields fall back to the defaults.
func NewDocumentValidator(limits Limits) interfaces.DocumentValidator {
	if limits.MaxPages <= 0 {
		limits.MaxPages = DefaultLimits.MaxPages
	}
	if limits.MaxBytes <= 0 {
		limits.MaxBytes = DefaultLimits.MaxBytes
	}
	return &DocumentValidatorImpl{limits: limits}
}

// ValidateDocument checks the page-level text blocks of one document before
// parsing starts.
func (v *DocumentValidatorImpl) ValidateDocument(pages []string) error {
	if len(pages) == 0 {
		return fmt.Errorf("document has no pages: %w", ErrNoTextExtracted)
	}
	if len(pages) > v.limits.MaxPages {
		logging.Warn("Rejecting oversized document", "pages", len(pages), "max", v.limits.MaxPages)
		return fmt.Errorf("document has %d pages (max %d): %w", len(pages), v.limits.MaxPages, ErrDocumentTooLarge)
	}

	var total int64
	empty := true
	for i, page := range pages {
		if !utf8.ValidString(page) {
			return fmt.Errorf("page %d is not valid text: %w", i+1, ErrDocumentUnreadable)
		}
		total += int64(len(page))
		if strings.TrimSpace(page) != "" {
			empty = false
		}
	}
	if total > v.limits.MaxBytes {
		logging.Warn("Rejecting oversized document", "bytes", total, "max", v.limits.MaxBytes)
		return fmt.Errorf("document text is %d bytes (max %d): %w", total, v.limits.MaxBytes, ErrDocumentTooLarge)
	}
	if empty {
		return fmt.Errorf("all %d pages are blank: %w", len(pages), ErrNoTextExtracted)
	}
	return nil
}

// ValidateInput validates an externally supplied string (a food name or a
// receipt line) before it enters the matching pipeline.
func (v *DocumentValidatorImpl) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}
	if len(input) > 200 {
		return fmt.Errorf("input too long: %d characters (max 200)", len(input))
	}
	for _, r := range input {
		if unicode.IsControl(r) && r != '\t' {
			return fmt.Errorf("input contains control characters")
		}
	}
	return nil
}
