package testing_util

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTempFile writes content to a file named name inside a directory that is
// removed when the test finishes, and returns the file's path.
func WriteTempFile(t *testing.T, name, content string) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temporary file %q: %v", path, err)
	}
	return path
}
