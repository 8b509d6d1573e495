// Package testsupport provides small filesystem fixtures for tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path (and any missing parent directories) with the given
// contents.
func WriteFile(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
