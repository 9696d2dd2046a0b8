package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// WriteJSON writes the result as an indented JSON report, creating parent
// directories as needed.
func WriteJSON(path string, result scoring.Result) error {
	if result.Samples == nil {
		result.Samples = []scoring.SampleScore{}
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := ensureParent(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// LoadJSON reads a report written by WriteJSON.
func LoadJSON(path string) (scoring.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scoring.Result{}, fmt.Errorf("read report: %w", err)
	}
	var result scoring.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return scoring.Result{}, fmt.Errorf("parse report %s: %w", path, err)
	}
	return result, nil
}

func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	return nil
}
