// Package testutil holds shared helpers for golden-file assertions on
// rendered terminal frames.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// Golden compares a rendered frame against testdata/<name>. Frames are
// normalized first: ANSI sequences are stripped and trailing whitespace is
// trimmed per line, so style changes and terminal padding do not churn the
// golden files. Set UPDATE_GOLDEN to rewrite them.
func Golden(t *testing.T, name, frame string) {
	t.Helper()
	got := Normalize(frame)
	path := filepath.Join("testdata", name)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got+"\n"), 0o644); err != nil {
			t.Fatalf("failed to update golden: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", name, err)
	}
	want := Normalize(string(data))
	if want != got {
		t.Fatalf("frame mismatch for %s\nexpected:\n%s\nactual:\n%s", name, want, got)
	}
}

// Normalize strips ANSI sequences, trims trailing whitespace per line, and
// drops trailing blank lines.
func Normalize(frame string) string {
	lines := strings.Split(ansi.Strip(frame), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.Join(lines, "\n")
	return strings.TrimRight(out, "\n")
}
