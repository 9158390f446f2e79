//go:build !windows

package rcfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func fileMode(t *testing.T, path string) os.FileMode {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.Mode().Perm()
}

func TestAppendExportPreservesFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(path, []byte("# profile\n"), 0600))

	added, err := AppendExport(path, "A", "1")
	require.NoError(t, err)
	require.True(t, added)

	require.Equal(t, os.FileMode(0600), fileMode(t, path),
		"rewrite must keep the startup file's mode")
}

func TestRemoveExportPreservesFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(path, []byte("export A=1\n"), 0600))

	removed, err := RemoveExport(path, "A")
	require.NoError(t, err)
	require.True(t, removed)

	require.Equal(t, os.FileMode(0600), fileMode(t, path))
}

func TestAppendExportCreatesFileWithDefaultMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zshenv")

	_, err := AppendExport(path, "A", "1")
	require.NoError(t, err)

	require.Equal(t, os.FileMode(0644), fileMode(t, path))
}
