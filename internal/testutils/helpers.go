package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTopicsDir creates a temporary topics directory holding files.
// Keys are slash-separated paths relative to the directory.
// It returns the absolute path and fails the test immediately on error.
func SetupTopicsDir(t *testing.T, files map[string]string) string {
	t.Helper()

	// t.TempDir usually returns an absolute path already.
	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	WriteTree(t, absPath, files)
	return absPath
}

// WriteTree writes files below root, creating directories as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(name)), content)
	}
}

// WriteFile writes a single file, creating its parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create %s", filepath.Dir(path))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", path)
}
