package dataset

import (
	"encoding/json"
	"strings"
	"testing"
)

func parseValue(t *testing.T, raw string) JSONValue {
	t.Helper()
	var value JSONValue
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		t.Fatalf("parse %s: %v", raw, err)
	}
	return value
}

func issueFields(issues []Issue) []string {
	fields := make([]string, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, issue.Field)
	}
	return fields
}

// TestValidateSubmissionAcceptsWellFormed verifies a valid entry has no issues.
func TestValidateSubmissionAcceptsWellFormed(t *testing.T) {
	value := parseValue(t, `{"uuid":"s1","component":"db","reason":"r","reasoning_trace":[{"step":1,"action":"a","observation":"o"}]}`)
	if issues := ValidateSubmission(value); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

// TestValidateSubmissionCollectsAllIssues verifies every violation is reported.
func TestValidateSubmissionCollectsAllIssues(t *testing.T) {
	value := parseValue(t, `{"uuid":"s1","component":3,"reasoning_trace":[{"step":1.5,"action":"a"},"x",{"step":2,"action":null,"observation":"o"}]}`)
	issues := ValidateSubmission(value)
	got := strings.Join(issueFields(issues), ",")
	want := "reason,component,reasoning_trace[1].observation,reasoning_trace[1].step,reasoning_trace[2],reasoning_trace[3].action"
	if got != want {
		t.Fatalf("expected fields %s, got %s", want, got)
	}
	for _, issue := range issues {
		if issue.UUID != "s1" {
			t.Fatalf("expected issue to carry uuid, got %+v", issue)
		}
	}
}

// TestValidateSubmissionTraceMustBeList verifies non-list traces stop trace checks.
func TestValidateSubmissionTraceMustBeList(t *testing.T) {
	value := parseValue(t, `{"uuid":"s1","component":"db","reason":"r","reasoning_trace":{"step":1}}`)
	issues := ValidateSubmission(value)
	if len(issues) != 1 || issues[0].Field != "reasoning_trace" {
		t.Fatalf("expected single trace issue, got %+v", issues)
	}
	if !strings.Contains(issues[0].Message, "must be a list") {
		t.Fatalf("unexpected message: %s", issues[0].Message)
	}
}

// TestValidationErrorMessage verifies the error names entry and field.
func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Source: "submission s.jsonl", Issues: []Issue{{UUID: "s1", Field: "reasoning_trace[2].step", Message: "must be int, got string"}}}
	msg := err.Error()
	for _, token := range []string{"submission s.jsonl", "entry s1", "reasoning_trace[2].step", "must be int"} {
		if !strings.Contains(msg, token) {
			t.Fatalf("expected %q in %q", token, msg)
		}
	}
}
