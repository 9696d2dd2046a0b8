package dataset

// GroundTruth is the reference answer for one incident.
type GroundTruth struct {
	UUID           string          `json:"uuid"`
	Component      string          `json:"component"`
	Reason         string          `json:"reason"`
	ReasonKeywords []string        `json:"reason_keywords,omitempty"`
	EvidencePoints []EvidencePoint `json:"evidence_points,omitempty"`
}

// EvidencePoint lists keywords a reasoning trace is expected to surface.
type EvidencePoint struct {
	Keywords []string `json:"keywords"`
}

// Submission is one predicted diagnosis.
type Submission struct {
	UUID           string      `json:"uuid"`
	Component      string      `json:"component"`
	Reason         string      `json:"reason"`
	ReasoningTrace []TraceStep `json:"reasoning_trace"`
}

// TraceStep is one step of a submission's reasoning trace.
type TraceStep struct {
	Step        int    `json:"step"`
	Action      string `json:"action"`
	Observation string `json:"observation"`
}

// Sample pairs a ground-truth entry with the submission scored against it.
type Sample struct {
	Truth      GroundTruth
	Submission Submission
	// Synthesized is set when the submission was missing and a blank one
	// was substituted.
	Synthesized bool
}

// BlankSubmission returns the empty prediction used for missing uuids.
func BlankSubmission(uuid string) Submission {
	return Submission{
		UUID:           uuid,
		ReasoningTrace: []TraceStep{},
	}
}

// Observations returns the observation text of every trace step in order.
func (s Submission) Observations() []string {
	out := make([]string, 0, len(s.ReasoningTrace))
	for _, step := range s.ReasoningTrace {
		out = append(out, step.Observation)
	}
	return out
}

// KeywordLists returns the keyword list of every evidence point in order.
func (g GroundTruth) KeywordLists() [][]string {
	out := make([][]string, 0, len(g.EvidencePoints))
	for _, point := range g.EvidencePoints {
		out = append(out, point.Keywords)
	}
	return out
}
