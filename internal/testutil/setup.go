// Package testutil provides trace fixture helpers shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteTrace writes the given record lines to a fresh trace file in a
// temporary directory and returns its path. Lines are joined with
// newlines; a trailing newline is appended.
//
// Example:
//
//	path := testutil.WriteTrace(t, "W 0 8", "R 0 4")
func WriteTrace(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write trace fixture: %v", err)
	}
	return path
}

// WriteTraceRaw writes content verbatim, for fixtures that need exact
// byte control (missing trailing newline, CRLF endings, and so on).
func WriteTraceRaw(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write trace fixture: %v", err)
	}
	return path
}
