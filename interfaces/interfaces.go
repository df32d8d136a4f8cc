// Package interfaces defines core abstractions for the diet document engine
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"github.com/leooon3/mydiet-api/dietparser/entities"
)

// DietParser defines the contract for turning page-level text blocks into a
// structured diet document. Malformed or oversized input fails the whole
// parse; ambiguous rows never do.
type DietParser interface {
	// ParseDocument parses the already-extracted page texts of one document.
	ParseDocument(pages []string) (*entities.DietDocument, error)
}

// ReceiptMatcher defines the contract for matching OCR receipt lines
// against a vocabulary of permitted foods. Matching is best-effort: lines
// that clear no threshold are dropped, never reported as errors.
type ReceiptMatcher interface {
	// MatchReceipt scores every receipt line against the vocabulary and
	// returns the accepted matches in line order.
	MatchReceipt(lines []string, vocabulary []string) []entities.MatchResult
}

// DocumentValidator defines the contract for boundary validation of
// document and user input.
type DocumentValidator interface {
	// ValidateDocument checks page count, size and readability.
	ValidateDocument(pages []string) error

	// ValidateInput validates user input strings.
	ValidateInput(input string) error
}
