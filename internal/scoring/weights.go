package scoring

import "math"

// Efficiency curve parameters: a mean path of ReferencePathLength steps scores
// 1.0 and longer paths decay with scale PathLengthDecay.
const (
	ReferencePathLength = 5.0
	PathLengthDecay     = 5.0
)

// Weights are the metric weights of the final score. They sum to 1.
type Weights struct {
	Component      float64
	Reason         float64
	Efficiency     float64
	Explainability float64
}

// DefaultWeights returns the fixed weighting used for every run.
func DefaultWeights() Weights {
	return Weights{
		Component:      0.40,
		Reason:         0.40,
		Efficiency:     0.10,
		Explainability: 0.10,
	}
}

// FinalScore combines metrics into a score clamped to [0, 100].
func (w Weights) FinalScore(m Metrics) float64 {
	score := 100.0 * (w.Component*m.ComponentAccuracy +
		w.Reason*m.ReasonAccuracy +
		w.Efficiency*m.Efficiency +
		w.Explainability*m.Explainability)
	return math.Min(math.Max(score, 0), 100)
}

// EfficiencyForPathLength maps a mean path length onto [0, 1].
func EfficiencyForPathLength(apl float64) float64 {
	value := math.Exp(-(apl - ReferencePathLength) / PathLengthDecay)
	return math.Min(math.Max(value, 0), 1)
}
