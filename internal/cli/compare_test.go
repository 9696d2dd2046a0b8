package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChenyuHeee/AIOPS/internal/report"
	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// TestCompareReports verifies deltas and flips between two JSON reports.
func TestCompareReports(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, "base.json")
	headPath := filepath.Join(dir, "head.json")
	base := scoring.Result{
		Metrics: scoring.Metrics{ComponentAccuracy: 0.5, FinalScore: 20},
		Samples: []scoring.SampleScore{{UUID: "s1"}, {UUID: "s2", ComponentCorrect: true}},
	}
	head := scoring.Result{
		Metrics: scoring.Metrics{ComponentAccuracy: 1, FinalScore: 40},
		Samples: []scoring.SampleScore{{UUID: "s1", ComponentCorrect: true}, {UUID: "s2", ComponentCorrect: true}},
	}
	if err := report.WriteJSON(basePath, base); err != nil {
		t.Fatalf("write base: %v", err)
	}
	if err := report.WriteJSON(headPath, head); err != nil {
		t.Fatalf("write head: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"compare", "--base", basePath, "--head", headPath, "--no-color"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr.String())
	}
	mustContain(t, stdout.String(),
		"Component Accuracy (LA): 50.00% -> 100.00% (+50.00)",
		"Final Score:             20.00 -> 40.00 (+20.00)",
		"s1 component_correct: False -> True",
	)
}

// TestCompareMissingReport verifies unreadable reports fail.
func TestCompareMissingReport(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Run([]string{"compare", "--base", filepath.Join(dir, "a.json"), "--head", filepath.Join(dir, "b.json")}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	mustContain(t, stderr.String(), "Compare failed: base:")
}

// TestCompareRequiresBothSides verifies flag validation.
func TestCompareRequiresBothSides(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"compare", "--base", "a.json"}, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	mustContain(t, stderr.String(), "Missing --base or --head")
}

// TestCompareStoredRuns verifies run ids resolve through the history database.
func TestCompareStoredRuns(t *testing.T) {
	withoutConfigSearch(t)
	dir := t.TempDir()
	gt := writeFile(t, dir, "gt.jsonl", perfectGroundTruth)
	good := writeFile(t, dir, "good.jsonl", perfectSubmission)
	empty := writeFile(t, dir, "empty.jsonl", "")
	dbPath := filepath.Join(dir, "history.duckdb")

	var stdout, stderr bytes.Buffer
	withFixedRunID(t, "9b2f4b7e-3f1f-4a55-9e2a-0c3d6a1b2c01")
	if code := Run([]string{"score", "-g", gt, "-s", empty, "--db", dbPath}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("score base: %s", stderr.String())
	}
	withFixedRunID(t, "9b2f4b7e-3f1f-4a55-9e2a-0c3d6a1b2c02")
	if code := Run([]string{"score", "-g", gt, "-s", good, "--db", dbPath}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("score head: %s", stderr.String())
	}

	stdout.Reset()
	code := Run([]string{"compare", "--db", dbPath, "--no-color",
		"--base", "9b2f4b7e-3f1f-4a55-9e2a-0c3d6a1b2c01",
		"--head", "9b2f4b7e-3f1f-4a55-9e2a-0c3d6a1b2c02"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("compare exit %d: %s", code, stderr.String())
	}
	mustContain(t, stdout.String(),
		"Final Score:             0.00 -> 100.00 (+100.00)",
		"s1 component_correct: False -> True",
		"s1 reason_correct: False -> True",
	)
}

// TestCompareMissingDatabase fails without creating the database file.
func TestCompareMissingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.duckdb")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"compare", "--db", dbPath, "--base", "a", "--head", "b"}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	mustContain(t, stderr.String(), "Compare failed:", "does not exist")
	if _, err := os.Stat(dbPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no database file, got %v", err)
	}
}
