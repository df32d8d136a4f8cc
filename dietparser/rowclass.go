package dietparser

import (
	"regexp"
	"strings"
)

// rowClass is the outcome of classifying one normalized table row. The
// classifier is a pure function so parsing decisions stay testable
// row-by-row.
type rowClass int

const (
	rowBoilerplate rowClass = iota
	rowDayHeader
	rowMealHeader
	rowFood
)

// Weekdays holds the canonical Italian weekday names. Day keys of a parsed
// document are always drawn from this set.
var Weekdays = []string{
	"Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato", "Domenica",
}

// dayPrefixes canonicalizes truncated or English day tokens that sometimes
// survive extraction ("lun 15/03", "mon").
var dayPrefixes = []struct{ prefix, name string }{
	{"lun", "Lunedì"},
	{"mar", "Martedì"},
	{"mer", "Mercoledì"},
	{"gio", "Giovedì"},
	{"ven", "Venerdì"},
	{"sab", "Sabato"},
	{"dom", "Domenica"},
}

// mealTriggers are tested longest-first so "Seconda Colazione" is never
// shadowed by "Colazione" and "Spuntino Serale" never collapses into
// "Spuntino".
var mealTriggers = []string{
	"Nell'Arco Della Giornata",
	"Seconda Colazione",
	"Spuntino Serale",
	"Colazione",
	"Spuntino",
	"Merenda",
	"Pranzo",
	"Cena",
}

// mealMapping normalizes free-form meal headings onto the canonical trigger
// set ("prima colazione" -> "Colazione"). Direct key match first, then
// partial containment, longest keys first.
var mealMapping = []struct{ key, name string }{
	{"nell'arco della giornata", "Nell'Arco Della Giornata"},
	{"seconda colazione", "Seconda Colazione"},
	{"spuntino mattina", "Seconda Colazione"},
	{"spuntino serale", "Spuntino Serale"},
	{"prima colazione", "Colazione"},
	{"colazione", "Colazione"},
	{"spuntino", "Spuntino"},
	{"merenda", "Merenda"},
	{"pranzo", "Pranzo"},
	{"cena", "Cena"},
}

// defaultMeal is the meal food rows are assigned to before any trigger has
// been seen for the current day.
const defaultMeal = "Generic"

// boilerplateTokens mark rows that carry no dietary content: copyright
// notices, editor stamps, contact footers. Matched case-insensitively,
// before any other classification test.
var boilerplateTokens = []string{
	"tutti i diritti",
	"copyright",
	"riproduzione vietata",
	"elaborato con",
	"dott.",
	"www.",
	"@",
}

// pageNumberRule matches rows that are only a page marker.
var pageNumberRule = regexp.MustCompile(`^(?:pag(?:ina)?\.?\s*)?\d{1,3}$`)

// orphanFragments are meal-header leftovers that can survive trigger
// stripping on a partially matched row; they are never food names.
var orphanFragments = map[string]bool{
	"giornata":       true,
	"serale":         true,
	"arco":           true,
	"della giornata": true,
	"nell":           true,
}

// classifyRow decides what one normalized row is. Boilerplate wins over
// everything else; a weekday token anywhere in the row makes it a day
// header even when prefixed by boilerplate like "Piano alimentare ...".
func classifyRow(row string) rowClass {
	if row == "" || isBoilerplate(row) {
		return rowBoilerplate
	}
	if matchWeekday(row) != "" {
		return rowDayHeader
	}
	if _, _, ok := findMealTrigger(row); ok {
		return rowMealHeader
	}
	return rowFood
}

func isBoilerplate(row string) bool {
	folded := foldLower(row)
	if pageNumberRule.MatchString(strings.TrimSpace(folded)) {
		return true
	}
	if matchWeekday(row) != "" {
		return false
	}
	for _, token := range boilerplateTokens {
		if strings.Contains(folded, token) {
			return true
		}
	}
	return false
}

// matchWeekday returns the canonical weekday named anywhere in the row, or
// "" when the row names none. Matching is case- and diacritic-insensitive.
func matchWeekday(row string) string {
	folded := foldLower(row)
	for _, day := range Weekdays {
		if strings.Contains(folded, foldLower(day)) {
			return day
		}
	}
	return ""
}

// CanonicalDay maps an externally supplied day name onto the canonical
// weekday set, accepting truncated and English prefixes ("lun 15/03",
// "mon"). Unrecognized names pass through trimmed.
func CanonicalDay(name string) string {
	if day := matchWeekday(name); day != "" {
		return day
	}
	folded := foldLower(name)
	for _, p := range dayPrefixes {
		if strings.Contains(folded, p.prefix) {
			return p.name
		}
	}
	return strings.TrimSpace(name)
}

// asciiLower lowercases A-Z only, leaving the byte offset of every rune
// intact so indexes found on the folded copy can slice the original row.
func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// findMealTrigger locates the longest meal trigger contained in the row and
// returns it together with the row text left after stripping the trigger.
// RE2 has no lookaround, so the "Spuntino not followed by Serale" guard is
// an explicit check on the text after the match.
func findMealTrigger(row string) (trigger, rest string, ok bool) {
	lower := asciiLower(row)
	for _, trig := range mealTriggers {
		key := strings.ToLower(trig)
		idx := strings.Index(lower, key)
		if idx < 0 {
			continue
		}
		if trig == "Spuntino" {
			after := strings.TrimLeft(lower[idx+len(key):], " \t")
			if strings.HasPrefix(after, "serale") {
				continue
			}
		}
		residual := strings.TrimSpace(row[:idx] + " " + row[idx+len(key):])
		return trig, residual, true
	}
	return "", "", false
}

// NormalizeMealName maps a free-form meal heading onto the canonical meal
// set. Unknown headings are passed through capitalized; an empty heading
// becomes the default meal.
func NormalizeMealName(name string) string {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	if cleaned == "" {
		return defaultMeal
	}
	for _, m := range mealMapping {
		if cleaned == m.key {
			return m.name
		}
	}
	for _, m := range mealMapping {
		if strings.Contains(cleaned, m.key) {
			return m.name
		}
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}
