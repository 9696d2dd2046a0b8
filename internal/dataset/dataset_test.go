package dataset

import (
	"errors"
	"reflect"
	"testing"
)

// TestOpenReconcilesAndSynthesizes verifies extra and missing uuid handling.
func TestOpenReconcilesAndSynthesizes(t *testing.T) {
	dir := t.TempDir()
	gt := writeJSONL(t, dir, "gt.jsonl",
		`{"uuid":"b","component":"db","reason":"disk latency spike","reason_keywords":["latency",4,"  "],"evidence_points":[{"keywords":["disk"]},{"nope":1},"bad"]}`,
		`{"uuid":"a","component":"api","reason":"oom"}`,
	)
	sub := writeJSONL(t, dir, "sub.jsonl",
		`{"uuid":"b","component":"db","reason":"latency","reasoning_trace":[{"step":1,"action":"check","observation":"disk busy"}]}`,
		`{"uuid":"zz","component":7}`,
		`{"uuid":"extra","component":"x","reason":"y","reasoning_trace":[]}`,
	)

	inputs, err := Open(gt, sub)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	rec := inputs.Reconciliation()
	if !reflect.DeepEqual(rec.Extra, []string{"extra", "zz"}) {
		t.Fatalf("unexpected extras: %v", rec.Extra)
	}
	if !reflect.DeepEqual(rec.Missing, []string{"a"}) {
		t.Fatalf("unexpected missing: %v", rec.Missing)
	}

	samples, err := inputs.Samples()
	if err != nil {
		t.Fatalf("samples: %v", err)
	}
	if len(samples) != 2 || samples[0].Truth.UUID != "b" || samples[1].Truth.UUID != "a" {
		t.Fatalf("expected ground-truth order, got %+v", samples)
	}
	first := samples[0]
	if !reflect.DeepEqual(first.Truth.ReasonKeywords, []string{"latency"}) {
		t.Fatalf("unexpected keywords: %v", first.Truth.ReasonKeywords)
	}
	if len(first.Truth.EvidencePoints) != 3 || len(first.Truth.EvidencePoints[1].Keywords) != 0 {
		t.Fatalf("unexpected evidence points: %+v", first.Truth.EvidencePoints)
	}
	if first.Submission.ReasoningTrace[0].Observation != "disk busy" {
		t.Fatalf("unexpected trace: %+v", first.Submission.ReasoningTrace)
	}
	second := samples[1]
	if !second.Synthesized || second.Submission.Component != "" || len(second.Submission.ReasoningTrace) != 0 {
		t.Fatalf("expected blank synthesized submission, got %+v", second)
	}
}

// TestSamplesFailsOnSchemaViolation verifies malformed scored submissions abort.
func TestSamplesFailsOnSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	gt := writeJSONL(t, dir, "gt.jsonl", `{"uuid":"a","component":"db","reason":"r"}`, `{"uuid":"b","component":"db","reason":"r"}`)
	sub := writeJSONL(t, dir, "sub.jsonl",
		`{"uuid":"a","component":"db","reason":"r","reasoning_trace":[{"step":"1","action":"a","observation":"o"}]}`,
		`{"uuid":"b","component":"db"}`,
	)
	inputs, err := Open(gt, sub)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_, err = inputs.Samples()
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validation.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", validation.Issues)
	}
	if validation.Issues[0].UUID != "a" || validation.Issues[0].Field != "reasoning_trace[1].step" {
		t.Fatalf("unexpected first issue: %+v", validation.Issues[0])
	}
}

// TestSamplesRejectsNonStringTruthComponent verifies ground-truth components must be strings.
func TestSamplesRejectsNonStringTruthComponent(t *testing.T) {
	dir := t.TempDir()
	gt := writeJSONL(t, dir, "gt.jsonl", `{"uuid":"a","component":["db"],"reason":"r"}`)
	sub := writeJSONL(t, dir, "sub.jsonl")
	inputs, err := Open(gt, sub)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := inputs.Samples(); err == nil {
		t.Fatalf("expected error")
	}
}

// TestOpenRequiresGroundTruthRecords verifies an empty ground truth is fatal.
func TestOpenRequiresGroundTruthRecords(t *testing.T) {
	dir := t.TempDir()
	gt := writeJSONL(t, dir, "gt.jsonl", "")
	sub := writeJSONL(t, dir, "sub.jsonl", "")
	if _, err := Open(gt, sub); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}
