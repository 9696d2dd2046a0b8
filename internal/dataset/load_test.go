package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestReadJSONLSkipsBlankLines verifies blank lines are ignored and line numbers kept.
func TestReadJSONLSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONL(t, dir, "gt.jsonl", `{"uuid":"a"}`, "", "   ", `{"uuid":"b"}`)
	records, err := ReadJSONL(path, false)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Line != 4 {
		t.Fatalf("expected second record on line 4, got %d", records[1].Line)
	}
}

// TestReadJSONLInvalidLine verifies parse errors name the line.
func TestReadJSONLInvalidLine(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONL(t, dir, "gt.jsonl", `{"uuid":"a"}`, `{"uuid":`)
	_, err := ReadJSONL(path, false)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

// TestReadJSONLRejectsNonObjects verifies every line must be an object.
func TestReadJSONLRejectsNonObjects(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONL(t, dir, "gt.jsonl", `["uuid"]`)
	_, err := ReadJSONL(path, false)
	if err == nil || !strings.Contains(err.Error(), "expected a JSON object") {
		t.Fatalf("expected object error, got %v", err)
	}
}

// TestReadJSONLEmptyFile verifies the allowEmpty switch.
func TestReadJSONLEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONL(t, dir, "empty.jsonl", "", "")
	if _, err := ReadJSONL(path, false); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
	records, err := ReadJSONL(path, true)
	if err != nil {
		t.Fatalf("expected empty file to be allowed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

// TestReadJSONLMissingFile verifies missing files surface os.ErrNotExist.
func TestReadJSONLMissingFile(t *testing.T) {
	_, err := ReadJSONL(filepath.Join(t.TempDir(), "nope.jsonl"), true)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

// TestJSONValueIntegerLiterals verifies integer detection for trace steps.
func TestJSONValueIntegerLiterals(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONL(t, dir, "n.jsonl", `{"a":3,"b":3.0,"c":3e0,"d":-2}`)
	records, err := ReadJSONL(path, false)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	value := records[0].Value
	for field, want := range map[string]bool{"a": true, "b": false, "c": false, "d": true} {
		child, _ := value.Field(field)
		if _, got := child.IntValue(); got != want {
			t.Fatalf("%s: expected integer=%v", field, want)
		}
	}
}
