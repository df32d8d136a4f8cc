// Package receiptmatcher filters and scores noisy OCR receipt lines against
// a dynamic vocabulary of permitted foods derived from a parsed diet
// document. Matching is best-effort: a line that clears no threshold is
// silently excluded, never an error.
package receiptmatcher

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/leooon3/mydiet-api/dietparser"
	"github.com/leooon3/mydiet-api/dietparser/entities"
	"github.com/leooon3/mydiet-api/logging"
)

// MaxVocabularySize bounds worst-case fuzzy-match cost. Oversized
// vocabularies are truncated, not rejected.
const MaxVocabularySize = 500

// minEntryLength is the shortest food name eligible for matching; anything
// shorter produces too many false positives and is covered by the generic
// terms below instead.
const minEntryLength = 3

// genericTerms stand in for food names too short to match reliably.
var genericTerms = []string{"pane", "latte", "uova", "frutta", "verdura"}

var (
	leadingPunctRule  = regexp.MustCompile(`^[\s•\-.*,;:']+`)
	trailingGramsRule = regexp.MustCompile(`(?i)\s*\(?(?:gr|g)\)?\.?\s*\d{1,4}\s*$`)
)

// BuildVocabulary normalizes a flat food-name list into the deduplicated,
// lowercase vocabulary the matcher consumes: leading punctuation and
// trailing explicit gram markers are stripped, order is preserved, and the
// result is capped at MaxVocabularySize entries.
func BuildVocabulary(names []string) []string {
	seen := make(map[string]bool)
	var vocab []string
	droppedShort := false

	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			vocab = append(vocab, name)
		}
	}

	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		name = leadingPunctRule.ReplaceAllString(name, "")
		name = trailingGramsRule.ReplaceAllString(name, "")
		name = strings.TrimSpace(name)
		if utf8.RuneCountInString(name) < minEntryLength {
			if name != "" {
				droppedShort = true
			}
			continue
		}
		add(name)
	}

	if droppedShort {
		for _, term := range genericTerms {
			add(term)
		}
	}

	if len(vocab) > MaxVocabularySize {
		logging.Warn("Vocabulary truncated", "entries", len(vocab), "max", MaxVocabularySize)
		vocab = vocab[:MaxVocabularySize]
	}
	return vocab
}

// VocabularyFromDocument flattens a parsed diet document into the matchable
// food vocabulary.
func VocabularyFromDocument(doc *entities.DietDocument) []string {
	if doc == nil {
		return nil
	}
	names := doc.AllFoodNames()
	for i, name := range names {
		names[i] = dietparser.FoldDiacritics(name)
	}
	return BuildVocabulary(names)
}
