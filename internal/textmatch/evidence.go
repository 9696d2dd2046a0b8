package textmatch

import "strings"

// EvidenceHits counts how many evidence points are surfaced by observations.
// Each point is a keyword list; a point is hit when any of its keywords
// appears in any normalized observation. Points without a usable keyword are
// not counted in total.
func EvidenceHits(points [][]string, observations []string) (hits, total int) {
	if len(points) == 0 {
		return 0, 0
	}

	normalized := make([]string, 0, len(observations))
	for _, observation := range observations {
		normalized = append(normalized, strings.ToLower(
			NormalizeObservation(observation, DefaultObservationCharLimit, DefaultObservationWordLimit),
		))
	}

	for _, point := range points {
		keywords := normalizeKeywords(point)
		if len(keywords) == 0 {
			continue
		}
		total++
		if anyContains(normalized, keywords) {
			hits++
		}
	}
	return hits, total
}

func anyContains(haystacks, needles []string) bool {
	for _, needle := range needles {
		for _, haystack := range haystacks {
			if strings.Contains(haystack, needle) {
				return true
			}
		}
	}
	return false
}
