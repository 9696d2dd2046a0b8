package report

import "github.com/ChenyuHeee/AIOPS/internal/scoring"

// sampleResult returns a two-sample result used across report tests.
func sampleResult() scoring.Result {
	return scoring.Result{
		Metrics: scoring.Metrics{
			ComponentAccuracy: 0.5,
			ReasonAccuracy:    1,
			Efficiency:        0.3679,
			Explainability:    0.25,
			FinalScore:        66.179,
		},
		Samples: []scoring.SampleScore{
			{UUID: "s1", ComponentCorrect: true, ReasonCorrect: true, StepCount: 10, EvidenceHit: 1, EvidenceTotal: 1},
			{UUID: "s2", ComponentCorrect: false, ReasonCorrect: true, StepCount: 0, EvidenceHit: 0, EvidenceTotal: 3},
		},
	}
}
