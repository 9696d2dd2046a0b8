package dataset

import "strings"

// decodeGroundTruth maps a raw ground-truth record onto GroundTruth.
// Optional fields with unexpected shapes are ignored rather than rejected;
// only a non-string component is an error because it cannot be compared.
func decodeGroundTruth(value JSONValue) (GroundTruth, []Issue) {
	uuid, _ := recordUUID(value)
	collector := &issueCollector{uuid: uuid}
	truth := GroundTruth{UUID: uuid}

	if component, ok := value.Field("component"); ok && component.Kind != JSONNull {
		text, isString := component.StringValue()
		if !isString {
			collector.add("component", "must be string, got "+component.Kind.String())
		}
		truth.Component = text
	}
	if reason, ok := value.Field("reason"); ok {
		truth.Reason, _ = reason.StringValue()
	}
	if keywords, ok := value.Field("reason_keywords"); ok {
		truth.ReasonKeywords = stringItems(keywords)
	}
	if points, ok := value.Field("evidence_points"); ok {
		items, _ := points.ArrayValue()
		for _, item := range items {
			keywords, ok := item.Field("keywords")
			if !ok {
				truth.EvidencePoints = append(truth.EvidencePoints, EvidencePoint{})
				continue
			}
			truth.EvidencePoints = append(truth.EvidencePoints, EvidencePoint{Keywords: stringItems(keywords)})
		}
	}
	return truth, collector.issues
}

// decodeSubmission maps a validated submission record onto Submission.
func decodeSubmission(value JSONValue) Submission {
	uuid, _ := recordUUID(value)
	sub := Submission{UUID: uuid, ReasoningTrace: []TraceStep{}}
	if component, ok := value.Field("component"); ok {
		sub.Component, _ = component.StringValue()
	}
	if reason, ok := value.Field("reason"); ok {
		sub.Reason, _ = reason.StringValue()
	}
	trace, _ := value.Field("reasoning_trace")
	steps, _ := trace.ArrayValue()
	for _, raw := range steps {
		var step TraceStep
		if number, ok := raw.Field("step"); ok {
			step.Step, _ = number.IntValue()
		}
		if action, ok := raw.Field("action"); ok {
			step.Action, _ = action.StringValue()
		}
		if observation, ok := raw.Field("observation"); ok {
			step.Observation, _ = observation.StringValue()
		}
		sub.ReasoningTrace = append(sub.ReasoningTrace, step)
	}
	return sub
}

// stringItems returns the string members of an array, skipping anything else.
func stringItems(value JSONValue) []string {
	items, ok := value.ArrayValue()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := item.StringValue(); ok && strings.TrimSpace(text) != "" {
			out = append(out, text)
		}
	}
	return out
}
