package metis

import "strings"

// stopWords are short filler words excluded from keyword extraction.
var stopWords = map[string]bool{
	"this": true,
	"that": true,
	"with": true,
	"from": true,
	"have": true,
}

// Tokenize splits free text into lowercase keywords: whitespace-separated
// words longer than three characters, minus the stop list. Order follows
// first appearance; duplicates are preserved so callers can count.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	fields := strings.Fields(strings.ToLower(text))
	var out []string
	for _, f := range fields {
		if len(f) <= 3 || stopWords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Levenshtein computes the edit distance between two strings. Used for
// nearest-command suggestions, never for ranking.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// sharesSubstring reports whether either string contains the other.
// Both sides are expected to be lowercase already.
func sharesSubstring(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// normalizeCommand canonicalizes free-text command input for lookup.
func normalizeCommand(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
