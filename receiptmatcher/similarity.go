package receiptmatcher

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Token-set similarity: both strings are reduced to sorted word sets, the
// sets are split into a shared part and two remainders, and the score is the
// best sequence ratio among (shared, shared+restA, shared+restB). The result
// is insensitive to word order and repetition, and a line whose tokens are a
// subset of a candidate's scores 100 — the length-aware tie-break in the
// matcher resolves those ties.

// ocrTokenDistance is the edit distance at which two long-enough tokens are
// still considered the same word ("NAURALE" / "NATURALE").
const ocrTokenDistance = 1

// tokenSetRatio scores two normalized strings 0-100.
func tokenSetRatio(a, b string) int {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	shared, restA, restB := splitShared(ta, tb)
	s0 := strings.Join(shared, " ")
	s1 := strings.TrimSpace(s0 + " " + strings.Join(restA, " "))
	s2 := strings.TrimSpace(s0 + " " + strings.Join(restB, " "))

	best := seqRatio(s1, s2)
	if r := seqRatio(s0, s1); r > best {
		best = r
	}
	if r := seqRatio(s0, s2); r > best {
		best = r
	}
	return best
}

// tokenSet returns the sorted unique whitespace-delimited tokens of s.
func tokenSet(s string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range strings.Fields(s) {
		if tok != "" && !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	sort.Strings(tokens)
	return tokens
}

// splitShared partitions two token sets into shared tokens and the two
// remainders. Tokens count as shared when equal, or within ocrTokenDistance
// edits of each other when both are at least 5 runes — single-character OCR
// damage must not break the intersection.
func splitShared(ta, tb []string) (shared, restA, restB []string) {
	usedB := make([]bool, len(tb))
	for _, t := range ta {
		matched := false
		for j, u := range tb {
			if usedB[j] {
				continue
			}
			if t == u || closeTokens(t, u) {
				shared = append(shared, u)
				usedB[j] = true
				matched = true
				break
			}
		}
		if !matched {
			restA = append(restA, t)
		}
	}
	for j, u := range tb {
		if !usedB[j] {
			restB = append(restB, u)
		}
	}
	return shared, restA, restB
}

func closeTokens(a, b string) bool {
	if len([]rune(a)) < 5 || len([]rune(b)) < 5 {
		return false
	}
	return fuzzy.LevenshteinDistance(a, b) <= ocrTokenDistance
}

// seqRatio is a 0-100 sequence similarity: 200*M/(len(a)+len(b)) where M is
// the longest common subsequence length. Equivalent to a Levenshtein ratio
// with substitutions weighted as delete+insert.
func seqRatio(a, b string) int {
	if a == b {
		return 100
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	m := lcsLength(ra, rb)
	return int(float64(200*m)/float64(len(ra)+len(rb)) + 0.5)
}

// lcsLength computes the longest common subsequence length with a two-row
// DP table.
func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
		for j := range curr {
			curr[j] = 0
		}
	}
	return prev[len(b)]
}
