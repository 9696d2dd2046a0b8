package textmatch

import "strings"

// DefaultReasonThreshold is the similarity a reason needs when no keyword hits.
const DefaultReasonThreshold = 0.65

// ReasonDecision identifies which branch accepted or rejected a reason.
type ReasonDecision string

const (
	DecisionKeyword    ReasonDecision = "keyword"
	DecisionSimilarity ReasonDecision = "similarity"
)

// ReasonMatch describes how a submitted reason was judged.
type ReasonMatch struct {
	Matched   bool
	Decision  ReasonDecision
	Keyword   string
	Sequence  float64
	Token     float64
	Threshold float64
}

// ReasonMatches reports whether submission is an acceptable restatement of
// the ground-truth reason.
func ReasonMatches(groundTruth, submission string, keywords []string, threshold float64) bool {
	return ExplainReason(groundTruth, submission, keywords, threshold).Matched
}

// ExplainReason judges a reason and records which branch decided.
// A keyword found in the first words of the submission accepts it outright;
// otherwise the better of sequence and token similarity must reach threshold.
func ExplainReason(groundTruth, submission string, keywords []string, threshold float64) ReasonMatch {
	trimmedSubmission := TruncateWords(submission, ReasonWordLimit)
	trimmedTruth := TruncateWords(groundTruth, ReasonWordLimit)
	lowered := strings.ToLower(trimmedSubmission)

	for _, keyword := range normalizeKeywords(keywords) {
		if strings.Contains(lowered, keyword) {
			return ReasonMatch{
				Matched:   true,
				Decision:  DecisionKeyword,
				Keyword:   keyword,
				Threshold: threshold,
			}
		}
	}

	seq := SequenceSimilarity(trimmedSubmission, trimmedTruth)
	tok := JaccardSimilarity(Tokenize(trimmedSubmission), Tokenize(trimmedTruth))
	return ReasonMatch{
		Matched:   max(seq, tok) >= threshold,
		Decision:  DecisionSimilarity,
		Sequence:  seq,
		Token:     tok,
		Threshold: threshold,
	}
}
