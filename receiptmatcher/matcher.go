package receiptmatcher

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leooon3/mydiet-api/config"
	"github.com/leooon3/mydiet-api/dietparser/entities"
	"github.com/leooon3/mydiet-api/interfaces"
	"github.com/leooon3/mydiet-api/metrics"
	"github.com/leooon3/mydiet-api/validation"
)

// Compile-time check to ensure Matcher implements the ReceiptMatcher interface
var _ interfaces.ReceiptMatcher = (*Matcher)(nil)

const (
	// minLineLength drops obvious scan debris before any other work.
	minLineLength = 4

	// matchThreshold is the minimum token-set score for any candidate.
	matchThreshold = 75

	// shortCandidateThreshold applies to vocabulary entries shorter than
	// shortCandidateLength runes: short entries need near-exact matches to
	// avoid false positives.
	shortCandidateThreshold = 90
	shortCandidateLength    = 5

	// candidateLimit is how many scored candidates are kept per line before
	// the tie-break.
	candidateLimit = 5

	// defaultQuantity is reported for matched items: grocery receipts carry
	// prices, not per-item weights.
	defaultQuantity = "1"

	// maxReceiptLines bounds one matching request. Longer receipts are
	// truncated, not rejected, mirroring the vocabulary cap.
	maxReceiptLines = 2000
)

// lineBlacklist marks non-food receipt boilerplate: totals, tax, store
// metadata, payment terms. Substring test, case-insensitive (lines are
// uppercased first).
var lineBlacklist = []string{
	"TOTALE", "SUBTOTALE", "IVA", "EURO", "RESTO", "CONTANT", "PAGAMENTO",
	"BANCOMAT", "CARTA", "SCONTRINO", "DOCUMENTO", "P.IVA", "CASSA",
	"OPERATORE", "ARROTONDAMENTO", "IMPORTO", "REPARTO", "FIDELITY",
	"GRAZIE", "ARRIVEDERCI",
}

var (
	// Trailing price ("1,29", "12.50 B") and promotional tags.
	priceSuffixRule = regexp.MustCompile(`\s+\d+[,.]\d+.*$`)
	promoTagRule    = regexp.MustCompile(`\*VI.*$`)
)

// tokenCorrections expands receipt abbreviations token by token. A token
// containing a key is replaced wholesale by the expansion; keys are tried
// in order and the first match wins.
var tokenCorrections = []struct{ key, with string }{
	{"YOG", "YOGURT"},
	{"MOZZ", "MOZZARELLA"},
	{"PROSC", "PROSCIUTTO"},
	{"PARMIG", "PARMIGIANO"},
	{"MELANZ", "MELANZANE"},
	{"ZUCCH", "ZUCCHINE"},
	{"INSAL", "INSALATA"},
	{"FORMAG", "FORMAGGIO"},
	{"BISCOT", "BISCOTTI"},
	{"CIOCC", "CIOCCOLATO"},
	{"POLL", "POLLO"},
	{"TONN", "TONNO"},
}

// Matcher scores receipt lines against a food vocabulary. A matcher is
// immutable after construction and safe for concurrent use; the vocabulary
// travels with each MatchReceipt invocation because it is rebuilt per
// request from caller-supplied data.
type Matcher struct {
	validator     interfaces.DocumentValidator
	maxVocabulary int
	maxLines      int
}

// NewMatcher creates a receipt matcher with the default limits.
func NewMatcher() *Matcher {
	return &Matcher{
		validator:     validation.NewDocumentValidator(validation.Limits{}),
		maxVocabulary: MaxVocabularySize,
		maxLines:      maxReceiptLines,
	}
}

// NewMatcherFromConfig creates a matcher bounded by the loaded application
// configuration.
func NewMatcherFromConfig(cfg *config.Config) *Matcher {
	m := NewMatcher()
	if cfg.MaxVocabularySize > 0 {
		m.maxVocabulary = cfg.MaxVocabularySize
	}
	if cfg.MaxReceiptLines > 0 {
		m.maxLines = cfg.MaxReceiptLines
	}
	return m
}

type candidate struct {
	name  string
	score int
}

// MatchReceipt filters, cleans and scores every receipt line, returning one
// MatchResult per line that clears the thresholds, in line order.
func (m *Matcher) MatchReceipt(lines []string, vocabulary []string) []entities.MatchResult {
	if len(vocabulary) > m.maxVocabulary {
		vocabulary = vocabulary[:m.maxVocabulary]
	}
	if len(lines) > m.maxLines {
		lines = lines[:m.maxLines]
	}

	titleCaser := cases.Title(language.Italian)
	var results []entities.MatchResult
	for _, raw := range lines {
		if err := m.validator.ValidateInput(raw); err != nil {
			metrics.ReceiptLinesTotal.WithLabelValues("filtered").Inc()
			continue
		}
		cleaned, ok := cleanLine(raw)
		if !ok {
			metrics.ReceiptLinesTotal.WithLabelValues("filtered").Inc()
			continue
		}

		best, found := bestCandidate(cleaned, vocabulary)
		if !found {
			metrics.ReceiptLinesTotal.WithLabelValues("unmatched").Inc()
			continue
		}

		metrics.ReceiptLinesTotal.WithLabelValues("matched").Inc()
		results = append(results, entities.MatchResult{
			Name:         titleCaser.String(best.name),
			Matched:      best.name,
			Quantity:     defaultQuantity,
			Score:        best.score,
			OriginalScan: strings.TrimSpace(raw),
		})
	}
	return results
}

// cleanLine normalizes one raw receipt line for scoring. The second return
// value is false when the line is noise: too short, blacklisted, or empty
// after cleaning.
func cleanLine(raw string) (string, bool) {
	line := strings.ToUpper(strings.TrimSpace(raw))
	if len(line) < minLineLength {
		return "", false
	}
	for _, token := range lineBlacklist {
		if strings.Contains(line, token) {
			return "", false
		}
	}

	line = priceSuffixRule.ReplaceAllString(line, "")
	line = promoTagRule.ReplaceAllString(line, "")

	tokens := strings.Fields(line)
	for i, tok := range tokens {
		for _, c := range tokenCorrections {
			if strings.Contains(tok, c.key) {
				tokens[i] = c.with
				break
			}
		}
	}
	line = strings.Join(tokens, " ")

	if len(line) < 3 {
		return "", false
	}
	return line, true
}

// bestCandidate scores the whole vocabulary against the cleaned line, keeps
// the top candidates above the thresholds and tie-breaks equal scores by
// preferring the candidate whose length is closest to the line's. That
// favors "melanzane" over "pasta con le melanzane" when both score 100.
func bestCandidate(cleaned string, vocabulary []string) (candidate, bool) {
	var candidates []candidate
	for _, entry := range vocabulary {
		score := tokenSetRatio(cleaned, strings.ToUpper(entry))
		if score < matchThreshold {
			continue
		}
		if len(entry) < shortCandidateLength && score < shortCandidateThreshold {
			continue
		}
		candidates = append(candidates, candidate{name: entry, score: score})
	}
	if len(candidates) == 0 {
		return candidate{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		di := lengthDelta(cleaned, candidates[i].name)
		dj := lengthDelta(cleaned, candidates[j].name)
		return di < dj
	})
	if len(candidates) > candidateLimit {
		candidates = candidates[:candidateLimit]
	}
	return candidates[0], true
}

func lengthDelta(a, b string) int {
	d := len(a) - len(b)
	if d < 0 {
		return -d
	}
	return d
}
