package scoring

// SampleScore is the per-sample outcome reported for one ground-truth entry.
type SampleScore struct {
	UUID             string `json:"uuid"`
	ComponentCorrect bool   `json:"component_correct"`
	ReasonCorrect    bool   `json:"reason_correct"`
	StepCount        int    `json:"step_count"`
	EvidenceHit      int    `json:"evidence_hit"`
	EvidenceTotal    int    `json:"evidence_total"`
}

// Metrics holds the normalized metrics and the weighted final score.
type Metrics struct {
	ComponentAccuracy float64 `json:"component_accuracy"`
	ReasonAccuracy    float64 `json:"reason_accuracy"`
	Efficiency        float64 `json:"efficiency"`
	Explainability    float64 `json:"explainability"`
	FinalScore        float64 `json:"final_score"`
}

// Result is the full output of a scoring run.
type Result struct {
	Metrics Metrics       `json:"metrics"`
	Samples []SampleScore `json:"samples"`
}

// Options configures a scoring run.
type Options struct {
	ReasonThreshold float64
}
