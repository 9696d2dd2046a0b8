package scoring

// Accumulator holds the running totals of a scoring pass. Partial
// accumulators built over disjoint samples can be merged in any order; all
// fields are sums or concatenated pools.
type Accumulator struct {
	Samples        int
	ComponentHits  int
	ReasonHits     int
	PathLengths    []int
	EvidenceHits   int
	EvidencePoints int
}

// Add records one sample. Step counts join the path-length pool only for
// samples whose component was diagnosed correctly.
func (a *Accumulator) Add(score SampleScore) {
	a.Samples++
	if score.ComponentCorrect {
		a.ComponentHits++
		a.PathLengths = append(a.PathLengths, score.StepCount)
	}
	if score.ReasonCorrect {
		a.ReasonHits++
	}
	a.EvidenceHits += score.EvidenceHit
	a.EvidencePoints += score.EvidenceTotal
}

// Merge folds other into a.
func (a *Accumulator) Merge(other Accumulator) {
	a.Samples += other.Samples
	a.ComponentHits += other.ComponentHits
	a.ReasonHits += other.ReasonHits
	a.PathLengths = append(a.PathLengths, other.PathLengths...)
	a.EvidenceHits += other.EvidenceHits
	a.EvidencePoints += other.EvidencePoints
}

// MeanPathLength returns the mean step count of correctly diagnosed samples.
func (a Accumulator) MeanPathLength() (float64, bool) {
	if len(a.PathLengths) == 0 {
		return 0, false
	}
	sum := 0
	for _, length := range a.PathLengths {
		sum += length
	}
	return float64(sum) / float64(len(a.PathLengths)), true
}

// Metrics reduces the totals into normalized metrics using weights.
func (a Accumulator) Metrics(weights Weights) Metrics {
	var m Metrics
	if a.Samples > 0 {
		m.ComponentAccuracy = float64(a.ComponentHits) / float64(a.Samples)
		m.ReasonAccuracy = float64(a.ReasonHits) / float64(a.Samples)
	}
	if apl, ok := a.MeanPathLength(); ok {
		m.Efficiency = EfficiencyForPathLength(apl)
	}
	if a.EvidencePoints > 0 {
		m.Explainability = float64(a.EvidenceHits) / float64(a.EvidencePoints)
	}
	m.FinalScore = weights.FinalScore(m)
	return m
}
