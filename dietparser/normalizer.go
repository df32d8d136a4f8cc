package dietparser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The normalizer repairs the corruption classes the PDF/OCR extraction step
// introduces before any structural decision is made: words split by spurious
// whitespace, digits split across a sequence boundary, and known domain
// typos. Rules run in a fixed order and the whole pass is idempotent.

// replacement is one ordered normalization rule.
type replacement struct {
	pattern *regexp.Regexp
	with    string
}

// repairRules run once, in order. Replacements are chosen so that their
// output never matches their own pattern again, which keeps Normalize
// idempotent without a fixed-point loop.
var repairRules = []replacement{
	// Typographic apostrophes, which would break the meal trigger set.
	{regexp.MustCompile("[‘’]"), "'"},

	// Words broken by spurious whitespace inside a token.
	{regexp.MustCompile(`(?i)\bPri\s+ma\b`), "Prima"},
	{regexp.MustCompile(`(?i)\bcolazio\s+ne\b`), "colazione"},
	{regexp.MustCompile(`(?i)\bSpun\s+tino\b`), "Spuntino"},
	{regexp.MustCompile(`(?i)\bMeren\s+da\b`), "Merenda"},
	{regexp.MustCompile(`(?i)\bgiorna\s+ta\b`), "giornata"},
	{regexp.MustCompile(`(?i)\bsosti\s+tuzion`), "sostituzion"},

	// Ingredient and meal-name typos that recur in scanned documents.
	{regexp.MustCompile(`(?i)\byogurth\b`), "yogurt"},
	{regexp.MustCompile(`(?i)\bfruta\b`), "frutta"},
	{regexp.MustCompile(`(?i)\bbresola\b`), "bresaola"},
	{regexp.MustCompile(`(?i)\bmozarella\b`), "mozzarella"},
	{regexp.MustCompile(`(?i)\bzuchine\b`), "zucchine"},

	// Weekday names that lost their final accent in extraction.
	{regexp.MustCompile(`(?i)\blunedi\b'?`), "Lunedì"},
	{regexp.MustCompile(`(?i)\bmartedi\b'?`), "Martedì"},
	{regexp.MustCompile(`(?i)\bmercoledi\b'?`), "Mercoledì"},
	{regexp.MustCompile(`(?i)\bgiovedi\b'?`), "Giovedì"},
	{regexp.MustCompile(`(?i)\bvenerdi\b'?`), "Venerdì"},
}

// digitSplitRule rejoins digits separated by whitespace ("1 9" -> "19").
// Applied repeatedly: regexp replacement is non-overlapping, so "1 2 3"
// needs two passes to become "123".
var digitSplitRule = regexp.MustCompile(`(\d)\s+(\d)`)

// maxDigitJoinPasses bounds the fixed-point loop on pathological input.
const maxDigitJoinPasses = 10

// Normalize repairs common OCR/PDF-extraction corruption in a single row or
// text block. It is a pure function and Normalize(Normalize(s)) ==
// Normalize(s) for every input.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	for _, rule := range repairRules {
		s = rule.pattern.ReplaceAllString(s, rule.with)
	}
	for i := 0; i < maxDigitJoinPasses; i++ {
		joined := digitSplitRule.ReplaceAllString(s, "$1$2")
		if joined == s {
			break
		}
		s = joined
	}
	return s
}

// FoldDiacritics strips combining marks so "Lunedì" and "Lunedi" compare
// equal. Day and vocabulary matching always fold before comparing.
func FoldDiacritics(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(folder, s)
	if err != nil {
		return s
	}
	return out
}

// foldLower is the comparison form used throughout the parser.
func foldLower(s string) string {
	return strings.ToLower(FoldDiacritics(s))
}
