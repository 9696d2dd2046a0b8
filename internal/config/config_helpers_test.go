package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes a config file into dir and returns its path.
func writeConfig(t *testing.T, dir, payload string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func floatPtr(value float64) *float64 {
	return &value
}
