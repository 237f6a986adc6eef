// Package testsupport holds small fixture helpers shared by package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes contents to path, creating parent directories as needed.
func WriteFile(t testing.TB, path string, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
