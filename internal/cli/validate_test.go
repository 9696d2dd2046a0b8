package cli

import (
	"bytes"
	"testing"
)

// TestValidateDefaultsWithoutConfig reports defaults when nothing is found.
func TestValidateDefaultsWithoutConfig(t *testing.T) {
	withoutConfigSearch(t)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr.String())
	}
	mustContain(t, stdout.String(), "Config OK: defaults (no .rcajudge.yml found)")
}

// TestValidateInputs checks both input files and counts entries.
func TestValidateInputs(t *testing.T) {
	withoutConfigSearch(t)
	dir := t.TempDir()
	gt := writeFile(t, dir, "gt.jsonl", perfectGroundTruth)
	sub := writeFile(t, dir, "sub.jsonl", perfectSubmission)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-g", gt, "-s", sub}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr.String())
	}
	mustContain(t, stdout.String(), "Inputs OK: 1 ground truth entries, 1 submission entries")
}

// TestValidateReportsEachIssue lists every schema issue on its own line.
func TestValidateReportsEachIssue(t *testing.T) {
	withoutConfigSearch(t)
	dir := t.TempDir()
	gt := writeFile(t, dir, "gt.jsonl", perfectGroundTruth)
	sub := writeFile(t, dir, "sub.jsonl", `{"uuid": "s1", "component": 7, "reason": 3, "reasoning_trace": []}
`)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-g", gt, "-s", sub}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	mustContain(t, stderr.String(),
		"Validation failed:",
		"submission "+sub+": 2 issue(s)",
		"  entry s1: component must be string, got number",
		"  entry s1: reason must be string, got number",
	)
}

// TestValidateRequiresBothInputs rejects a lone input file.
func TestValidateRequiresBothInputs(t *testing.T) {
	withoutConfigSearch(t)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-g", "gt.jsonl"}, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	mustContain(t, stderr.String(), "Both --ground-truth and --submission are required")
}

// TestValidateInvalidConfig surfaces config errors.
func TestValidateInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".rcajudge.yml", "version: 1\nscoring:\n  reason_threshold: 2\n")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	mustContain(t, stderr.String(), "reason_threshold")
}
