package dataset

import (
	"fmt"
	"strings"
)

// Issue captures one schema violation in an input record.
type Issue struct {
	UUID    string
	Field   string
	Message string
}

// String renders the issue with its entry and field.
func (issue Issue) String() string {
	return fmt.Sprintf("entry %s: %s %s", issue.UUID, issue.Field, issue.Message)
}

// ValidationError reports every schema violation found in a file.
type ValidationError struct {
	Source string
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, issue.String())
	}
	source := err.Source
	if source == "" {
		source = "input"
	}
	return fmt.Sprintf("%s schema validation failed: %s", source, strings.Join(parts, "; "))
}

type issueCollector struct {
	uuid   string
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{UUID: collector.uuid, Field: field, Message: message})
}

// Submission fields that must be present on every entry.
var (
	requiredSubmissionFields = []string{"uuid", "component", "reason", "reasoning_trace"}
	requiredTraceFields      = []string{"step", "action", "observation"}
)

// ValidateSubmission checks a raw submission record against the required
// schema and returns every violation found.
func ValidateSubmission(value JSONValue) []Issue {
	uuid, _ := recordUUID(value)
	collector := &issueCollector{uuid: uuid}

	for _, field := range requiredSubmissionFields {
		if _, ok := value.Field(field); !ok {
			collector.add(field, "is missing")
		}
	}
	expectString(collector, value, "", "component")
	expectString(collector, value, "", "reason")

	trace, ok := value.Field("reasoning_trace")
	if !ok {
		return collector.issues
	}
	steps, ok := trace.ArrayValue()
	if !ok {
		collector.add("reasoning_trace", "must be a list, got "+trace.Kind.String())
		return collector.issues
	}
	for i, step := range steps {
		prefix := fmt.Sprintf("reasoning_trace[%d]", i+1)
		if step.Kind != JSONObject {
			collector.add(prefix, "must be an object, got "+step.Kind.String())
			continue
		}
		for _, field := range requiredTraceFields {
			if _, ok := step.Field(field); !ok {
				collector.add(prefix+"."+field, "is missing")
			}
		}
		if number, ok := step.Field("step"); ok {
			if _, isInt := number.IntValue(); !isInt {
				collector.add(prefix+".step", "must be int, got "+describeKind(number))
			}
		}
		expectString(collector, step, prefix, "action")
		expectString(collector, step, prefix, "observation")
	}
	return collector.issues
}

// expectString records an issue when a present field is not a string.
func expectString(collector *issueCollector, value JSONValue, prefix, field string) {
	child, ok := value.Field(field)
	if !ok {
		return
	}
	if child.Kind == JSONString {
		return
	}
	name := field
	if prefix != "" {
		name = prefix + "." + field
	}
	collector.add(name, "must be string, got "+child.Kind.String())
}

func describeKind(value JSONValue) string {
	if value.Kind == JSONNumber && !value.Integer {
		return "float"
	}
	return value.Kind.String()
}
