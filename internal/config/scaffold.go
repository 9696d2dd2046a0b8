package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
scoring:
  reason_threshold: 0.65
output:
  report: "results/report.json"
  details: false
  color: auto
store:
  path: "results/history.duckdb"
`

// Scaffold writes a starter config file into dir. It refuses to overwrite
// an existing file.
func Scaffold(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, ConfigFileName)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return "", fmt.Errorf("config path %q is a directory", path)
		}
		return "", fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}
