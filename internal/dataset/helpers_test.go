package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeJSONL writes lines to a file in a temp directory and returns its path.
func writeJSONL(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
