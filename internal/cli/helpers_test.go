package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ChenyuHeee/AIOPS/internal/config"
	"github.com/ChenyuHeee/AIOPS/internal/testutil"
)

const perfectGroundTruth = `{"uuid": "s1", "component": "db", "reason": "disk latency spike", "reason_keywords": ["latency"], "evidence_points": [{"keywords": ["disk"]}]}
`

const perfectSubmission = `{"uuid": "s1", "component": "db", "reason": "something about latency here", "reasoning_trace": [{"step": 1, "action": "check", "observation": "disk usage was high"}]}
`

// writeFile writes content to name under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// withoutConfigSearch stops tests from picking up a config above the temp dir.
func withoutConfigSearch(t *testing.T) {
	t.Helper()
	orig := findConfigPath
	findConfigPath = func(string) (string, error) {
		return "", fmt.Errorf("search disabled: %w", config.ErrNotFound)
	}
	t.Cleanup(func() { findConfigPath = orig })
}

// withFixedRunID pins run ids for deterministic output.
func withFixedRunID(t *testing.T, id string) {
	t.Helper()
	orig := newRunID
	newRunID = func() string { return id }
	t.Cleanup(func() { newRunID = orig })
}

// withClock pins run timestamps to a fake clock.
func withClock(t *testing.T, start time.Time) *testutil.FakeClock {
	t.Helper()
	clock := testutil.NewFakeClock(start)
	orig := now
	now = clock.Now
	t.Cleanup(func() { now = orig })
	return clock
}

// withTerminal overrides TTY detection.
func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = orig })
}

// mustContain fails when text lacks any of tokens.
func mustContain(t *testing.T, text string, tokens ...string) {
	t.Helper()
	for _, token := range tokens {
		if !strings.Contains(text, token) {
			t.Fatalf("expected %q in output:\n%s", token, text)
		}
	}
}
