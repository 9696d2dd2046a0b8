package textmatch

import "strings"

// Limits applied before text comparison.
const (
	ReasonWordLimit             = 20
	DefaultObservationCharLimit = 100
	DefaultObservationWordLimit = 20
)

// Tokenize lowercases text and splits it on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// TruncateWords keeps the first limit whitespace-separated words of text.
// Text already within the limit is returned trimmed but otherwise untouched.
func TruncateWords(text string, limit int) string {
	tokens := strings.Fields(text)
	if len(tokens) <= limit {
		return strings.TrimSpace(text)
	}
	if limit < 0 {
		limit = 0
	}
	return strings.Join(tokens[:limit], " ")
}

// NormalizeObservation trims an observation, cuts it to charLimit characters
// and then to wordLimit words joined by single spaces.
func NormalizeObservation(text string, charLimit, wordLimit int) string {
	snippet := []rune(strings.TrimSpace(text))
	if charLimit >= 0 && len(snippet) > charLimit {
		snippet = snippet[:charLimit]
	}
	tokens := strings.Fields(string(snippet))
	if wordLimit >= 0 && len(tokens) > wordLimit {
		tokens = tokens[:wordLimit]
	}
	return strings.Join(tokens, " ")
}

// normalizeKeywords lowercases and trims keywords, dropping blanks.
func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		out = append(out, keyword)
	}
	return out
}
