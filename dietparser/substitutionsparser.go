package dietparser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/leooon3/mydiet-api/dietparser/entities"
	"github.com/leooon3/mydiet-api/metrics"
)

// The substitution tables live in the final pages of the document as blocks
// introduced by a "CAD: <code>" marker, each listing the interchangeable
// alternatives for that code. An "index of codes" recap sometimes follows
// the tables; everything after it is discarded.

var (
	// Case-sensitive on purpose: the code marker is always printed
	// uppercase, while running text mentions "cad" in other casings.
	cadMarkerRule = regexp.MustCompile(`CAD:\s*(\d+)`)

	gramTokenRule = regexp.MustCompile(`(?i)\(?(gr|g)\)?\.?\s*(\d{1,4})`)
	digitRule     = regexp.MustCompile(`\d`)
)

// indexOfCodesMarker introduces the recap boilerplate after the tables.
const indexOfCodesMarker = "indice dei codici"

// defaultBlockLines caps how many lines of one block are scanned.
const defaultBlockLines = 20

// parseSubstitutions scans the full document text and returns the
// substitution groups keyed by CAD code. A code appearing twice keeps the
// later block (last wins, plain map assignment semantics).
func parseSubstitutions(text string, maxBlockLines int) map[int]entities.SubstitutionGroup {
	if maxBlockLines <= 0 {
		maxBlockLines = defaultBlockLines
	}
	if idx := strings.Index(strings.ToLower(text), indexOfCodesMarker); idx >= 0 {
		text = text[:idx]
	}

	groups := make(map[int]entities.SubstitutionGroup)
	markers := cadMarkerRule.FindAllStringSubmatchIndex(text, -1)
	for i, loc := range markers {
		code, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil || code <= 0 {
			continue
		}
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		group := parseSubstitutionBlock(code, text[loc[1]:end], maxBlockLines)
		groups[group.Code] = group
		metrics.SubstitutionGroupsTotal.Inc()
	}
	return groups
}

// parseSubstitutionBlock reads one per-code block. A line is an option when
// it starts with "-" or is short (<50 chars) and carries a digit; any other
// line longer than 10 chars accumulates into the free-text description used
// as the fallback title.
func parseSubstitutionBlock(code int, block string, maxBlockLines int) entities.SubstitutionGroup {
	lines := strings.Split(block, "\n")
	if len(lines) > maxBlockLines {
		lines = lines[:maxBlockLines]
	}

	var options []entities.SubstitutionOption
	var description []string
	for _, line := range lines {
		line = strings.TrimSpace(Normalize(line))
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") || (len(line) < 50 && digitRule.MatchString(line)) {
			name := strings.TrimSpace(strings.TrimPrefix(line, "-"))
			quantity := "N/A"
			if m := gramTokenRule.FindStringSubmatch(name); m != nil {
				quantity = strings.ToLower(m[1]) + " " + m[2]
				name = strings.TrimSpace(strings.Replace(name, m[0], "", 1))
				name = multiSpaceRule.ReplaceAllString(name, " ")
			}
			name = strings.Trim(name, " \t.,;:")
			if name != "" {
				options = append(options, entities.SubstitutionOption{Name: name, Quantity: quantity})
			}
			continue
		}
		if len(line) > 10 {
			description = append(description, line)
		}
	}

	title := strings.Join(description, " ")
	if title == "" && len(options) > 0 {
		title = options[0].Name
	}
	if title == "" {
		title = fmt.Sprintf("CAD %d", code)
	}
	// Never hand out an empty choice set: mirror the title as the only
	// option when the block listed none.
	if len(options) == 0 {
		options = append(options, entities.SubstitutionOption{Name: title, Quantity: "N/A"})
	}

	return entities.SubstitutionGroup{Code: code, Title: title, Options: options}
}
