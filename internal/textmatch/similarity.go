package textmatch

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// SequenceSimilarity returns the case-insensitive Ratcliff/Obershelp ratio of
// a and b, compared character by character.
func SequenceSimilarity(a, b string) float64 {
	matcher := difflib.NewMatcher(splitChars(strings.ToLower(a)), splitChars(strings.ToLower(b)))
	return matcher.Ratio()
}

// JaccardSimilarity returns |A∩B| / |A∪B| over the distinct tokens of a and b.
// Either side being empty yields 0.
func JaccardSimilarity(a, b []string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// splitChars splits s into one element per rune.
func splitChars(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
