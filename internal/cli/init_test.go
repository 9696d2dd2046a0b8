package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ChenyuHeee/AIOPS/internal/config"
)

// TestInitWritesLoadableConfig verifies the scaffold passes validation.
func TestInitWritesLoadableConfig(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", "--dir", dir}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr.String())
	}
	path := filepath.Join(dir, config.ConfigFileName)
	mustContain(t, stdout.String(), "Wrote "+path)

	stdout.Reset()
	code = Run([]string{"validate", "--config", path}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("validate exit %d: %s", code, stderr.String())
	}
	mustContain(t, stdout.String(), "Config OK: "+path)
}

// TestInitRefusesOverwrite keeps an existing config untouched.
func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.ConfigFileName, "version: 1\n")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", "--dir", dir}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	mustContain(t, stderr.String(), "already exists")
}
