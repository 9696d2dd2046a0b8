package browse

import "github.com/ChenyuHeee/AIOPS/internal/scoring"

// Filter selects which samples the browser lists.
type Filter int

const (
	FilterAll Filter = iota
	FilterComponentMiss
	FilterReasonMiss
	FilterEvidenceMiss
)

var filterOrder = []Filter{FilterAll, FilterComponentMiss, FilterReasonMiss, FilterEvidenceMiss}

// String returns the display label of a filter.
func (f Filter) String() string {
	switch f {
	case FilterComponentMiss:
		return "component misses"
	case FilterReasonMiss:
		return "reason misses"
	case FilterEvidenceMiss:
		return "evidence gaps"
	default:
		return "all samples"
	}
}

// Next cycles to the following filter.
func (f Filter) Next() Filter {
	for i, candidate := range filterOrder {
		if candidate == f {
			return filterOrder[(i+1)%len(filterOrder)]
		}
	}
	return FilterAll
}

// Keep reports whether a sample passes the filter.
func (f Filter) Keep(sample scoring.SampleScore) bool {
	switch f {
	case FilterComponentMiss:
		return !sample.ComponentCorrect
	case FilterReasonMiss:
		return !sample.ReasonCorrect
	case FilterEvidenceMiss:
		return sample.EvidenceHit < sample.EvidenceTotal
	default:
		return true
	}
}

// State is the data shown by the browser.
type State struct {
	Title  string
	Result scoring.Result
	Filter Filter
}

// Visible returns the samples passing the current filter in report order.
func (s State) Visible() []scoring.SampleScore {
	out := make([]scoring.SampleScore, 0, len(s.Result.Samples))
	for _, sample := range s.Result.Samples {
		if s.Filter.Keep(sample) {
			out = append(out, sample)
		}
	}
	return out
}
