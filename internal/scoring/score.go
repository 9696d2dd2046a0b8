package scoring

import (
	"strings"

	"github.com/ChenyuHeee/AIOPS/internal/dataset"
	"github.com/ChenyuHeee/AIOPS/internal/textmatch"
)

// DefaultOptions returns the standard scoring options.
func DefaultOptions() Options {
	return Options{ReasonThreshold: textmatch.DefaultReasonThreshold}
}

// Score scores every sample and aggregates the metrics. Samples are expected
// in ground-truth order, one per ground-truth entry.
func Score(samples []dataset.Sample, opts Options) Result {
	var acc Accumulator
	scores := make([]SampleScore, 0, len(samples))
	for _, sample := range samples {
		score := ScoreSample(sample, opts)
		acc.Add(score)
		scores = append(scores, score)
	}
	return Result{
		Metrics: acc.Metrics(DefaultWeights()),
		Samples: scores,
	}
}

// ScoreSample runs the per-sample checks for one ground-truth entry.
func ScoreSample(sample dataset.Sample, opts Options) SampleScore {
	truth := sample.Truth
	sub := sample.Submission

	hits, total := textmatch.EvidenceHits(truth.KeywordLists(), sub.Observations())
	return SampleScore{
		UUID:             truth.UUID,
		ComponentCorrect: ComponentMatches(truth.Component, sub.Component),
		ReasonCorrect:    reasonCorrect(truth, sub, opts.ReasonThreshold),
		StepCount:        len(sub.ReasoningTrace),
		EvidenceHit:      hits,
		EvidenceTotal:    total,
	}
}

// ComponentMatches reports whether the predicted component equals the
// expected one after trimming. An empty expected component never matches.
func ComponentMatches(expected, predicted string) bool {
	expected = strings.TrimSpace(expected)
	return expected != "" && expected == strings.TrimSpace(predicted)
}

func reasonCorrect(truth dataset.GroundTruth, sub dataset.Submission, threshold float64) bool {
	if strings.TrimSpace(truth.Reason) == "" {
		return false
	}
	return textmatch.ReasonMatches(truth.Reason, sub.Reason, truth.ReasonKeywords, threshold)
}
