package dietparser

import (
	"regexp"
	"strconv"
	"strings"
)

// foodLine is the quantity / code / name split of one food row.
type foodLine struct {
	name     string
	quantity string
	code     int
	bullet   bool
}

var (
	// Explicit unit marker at the very end of the row: the digits are the
	// total quantity of a single dish. The unit must open its own token; a
	// unit glued to digits ("100gr") is a quantity for the embedded scan,
	// and the trailing number of such rows is the substitution-code column.
	trailingGramRule = regexp.MustCompile(`(?i)(?:^|[\s(])\(?(gr|g|ml)\)?\.?\s*(\d{1,4})\s*$`)

	// A bare 2-4 digit number at the end of the row is a substitution code
	// candidate (the rightmost table column). Longer runs of digits are not
	// codes and are left in place.
	trailingCodeRule = regexp.MustCompile(`(?:^|\D)(\d{2,4})\s*$`)

	// Quantity tokens embedded in a dish name.
	embeddedQtyRule = regexp.MustCompile(`(?i)\b(?:gr|g|ml)\s*\d+\b|\b\d+\s*(?:gr|g|ml)\b|\b1\s+vasetto\b|\bn[°º]?\s*\d+\b`)

	bulletRule     = regexp.MustCompile(`^\s*[•\-.]\s*`)
	multiSpaceRule = regexp.MustCompile(`\s{2,}`)
)

// extractFoodLine splits one cleaned row into name, quantity and
// substitution code. The second return value reports whether the row is
// accepted as a food line at all: a row qualifies when it carries a code, a
// quantity or a bullet marker, or when it immediately follows a
// freshly-detected day/meal header (a composed-dish title row). The policy
// is deliberately permissive toward bulleted ingredient lines and
// conservative toward bare headers.
func extractFoodLine(row string, afterHeader bool) (foodLine, bool) {
	var fl foodLine
	line := row

	if bulletRule.MatchString(line) {
		fl.bullet = true
		line = bulletRule.ReplaceAllString(line, "")
	}

	if m := trailingGramRule.FindStringSubmatch(line); m != nil {
		fl.quantity = strings.ToLower(m[1]) + " " + m[2]
		line = strings.TrimSpace(trailingGramRule.ReplaceAllString(line, ""))
	} else if loc := trailingCodeRule.FindStringSubmatchIndex(line); loc != nil {
		fl.code, _ = strconv.Atoi(line[loc[2]:loc[3]])
		line = strings.TrimSpace(line[:loc[2]])
	}

	// Secondary scan for a quantity token buried in the name.
	if fl.quantity == "" {
		if q := embeddedQtyRule.FindString(line); q != "" {
			fl.quantity = multiSpaceRule.ReplaceAllString(strings.TrimSpace(q), " ")
			line = strings.Replace(line, q, " ", 1)
		}
	}

	line = multiSpaceRule.ReplaceAllString(strings.TrimSpace(line), " ")
	line = strings.Trim(line, " \t.,;:")
	fl.name = line

	if fl.name == "" || orphanFragments[foldLower(fl.name)] {
		return foodLine{}, false
	}
	if fl.code == 0 && fl.quantity == "" && !fl.bullet && !afterHeader {
		return foodLine{}, false
	}
	return fl, true
}
