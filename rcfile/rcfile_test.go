package rcfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testProfile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".zshenv")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestAppendExportCreatesFile(t *testing.T) {
	path := testProfile(t)

	added, err := AppendExport(path, "EDITOR", "vim")
	require.NoError(t, err)
	require.True(t, added)

	require.Equal(t, "export EDITOR=vim\n", readFile(t, path))
}

func TestAppendExportIsIdempotent(t *testing.T) {
	path := testProfile(t)

	added, err := AppendExport(path, "EDITOR", "vim")
	require.NoError(t, err)
	require.True(t, added)

	added, err = AppendExport(path, "EDITOR", "vim")
	require.NoError(t, err)
	require.False(t, added)

	require.Equal(t, "export EDITOR=vim\n", readFile(t, path))
}

func TestAppendExportPreservesExistingContent(t *testing.T) {
	path := testProfile(t)
	require.NoError(t, os.WriteFile(path, []byte("# my profile\nalias ll='ls -l'\n"), 0644))

	added, err := AppendExport(path, "PAGER", "less")
	require.NoError(t, err)
	require.True(t, added)

	require.Equal(t, "# my profile\nalias ll='ls -l'\nexport PAGER=less\n", readFile(t, path))
}

func TestAppendExportAddsMissingTrailingNewline(t *testing.T) {
	path := testProfile(t)
	require.NoError(t, os.WriteFile(path, []byte("# no trailing newline"), 0644))

	_, err := AppendExport(path, "LANG", "C")
	require.NoError(t, err)

	require.Equal(t, "# no trailing newline\nexport LANG=C\n", readFile(t, path))
}

func TestAppendExportTrailingWhitespaceValueIsIdempotent(t *testing.T) {
	path := testProfile(t)

	added, err := AppendExport(path, "X", "v ")
	require.NoError(t, err)
	require.True(t, added)

	added, err = AppendExport(path, "X", "v ")
	require.NoError(t, err)
	require.False(t, added, "a trailing-space value must dedupe against its own line")

	require.Equal(t, "export X=v \n", readFile(t, path))
}

func TestAppendExportDistinguishesValues(t *testing.T) {
	path := testProfile(t)

	added, err := AppendExport(path, "EDITOR", "vim")
	require.NoError(t, err)
	require.True(t, added)

	// Same name, different value is still appended; the file format is
	// line-oriented, deduplication happens on the exact statement.
	added, err = AppendExport(path, "EDITOR", "nano")
	require.NoError(t, err)
	require.True(t, added)

	require.Equal(t, "export EDITOR=vim\nexport EDITOR=nano\n", readFile(t, path))
}

func TestRemoveExport(t *testing.T) {
	path := testProfile(t)
	content := "export A=1\nexport B=2\nexport A=3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	removed, err := RemoveExport(path, "A")
	require.NoError(t, err)
	require.True(t, removed)

	require.Equal(t, "export B=2\n", readFile(t, path))
}

func TestRemoveExportMissingFile(t *testing.T) {
	path := testProfile(t)

	removed, err := RemoveExport(path, "A")
	require.NoError(t, err)
	require.False(t, removed)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err), "file must not be created by RemoveExport")
}

func TestRemoveExportNoMatchLeavesFileUntouched(t *testing.T) {
	path := testProfile(t)
	content := "export B=2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	before, err := os.Stat(path)
	require.NoError(t, err)

	removed, err := RemoveExport(path, "A")
	require.NoError(t, err)
	require.False(t, removed)

	after, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, before.ModTime(), after.ModTime(), "file must not be rewritten")
	require.Equal(t, content, readFile(t, path))
}

func TestRemoveExportMatchesExactTokenOnly(t *testing.T) {
	path := testProfile(t)
	content := "# remember to keep GOPATH in sync\n" +
		"export GOPATH=/home/u/go\n" +
		"export GOPATH_BACKUP=/tmp/go\n" +
		"alias gopath='echo $GOPATH'\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	removed, err := RemoveExport(path, "GOPATH")
	require.NoError(t, err)
	require.True(t, removed)

	want := "# remember to keep GOPATH in sync\n" +
		"export GOPATH_BACKUP=/tmp/go\n" +
		"alias gopath='echo $GOPATH'\n"
	require.Equal(t, want, readFile(t, path))
}

func TestRemoveExportLastLineLeavesEmptyFile(t *testing.T) {
	path := testProfile(t)
	require.NoError(t, os.WriteFile(path, []byte("export A=1\n"), 0644))

	removed, err := RemoveExport(path, "A")
	require.NoError(t, err)
	require.True(t, removed)

	require.Equal(t, "", readFile(t, path))
}

func TestParse(t *testing.T) {
	path := testProfile(t)
	content := "# comment\nexport A=1\nexport B=two words\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	vars, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "1", vars["A"])
	require.Equal(t, "two words", vars["B"])
}

func TestParseMissingFile(t *testing.T) {
	vars, err := Parse(testProfile(t))
	require.NoError(t, err)
	require.Empty(t, vars)
}

func TestBackup(t *testing.T) {
	path := testProfile(t)
	require.NoError(t, os.WriteFile(path, []byte("export A=1\n"), 0644))

	backupPath, err := Backup(path)
	require.NoError(t, err)
	require.Equal(t, path+BackupSuffix, backupPath)
	require.Equal(t, "export A=1\n", readFile(t, backupPath))
}

func TestBackupMissingFile(t *testing.T) {
	_, err := Backup(testProfile(t))
	require.Error(t, err)

	var fileErr *FileError
	require.True(t, errors.As(err, &fileErr))
	require.Equal(t, "read", fileErr.Op)
}

func TestHasExport(t *testing.T) {
	path := testProfile(t)
	content := "# export A mentioned in a comment\nexport AB=1\nexport A=1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"present name", "A", true},
		{"prefix of a longer name", "AB", true},
		{"name only in comment", "comment", false},
		{"absent name", "B", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HasExport(path, tt.key)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHasExportMissingFile(t *testing.T) {
	got, err := HasExport(testProfile(t), "A")
	require.NoError(t, err)
	require.False(t, got)
}

func TestHasExportLine(t *testing.T) {
	path := testProfile(t)
	require.NoError(t, os.WriteFile(path, []byte("export A=1\n"), 0644))

	tests := []struct {
		name  string
		key   string
		value string
		want  bool
	}{
		{"exact match", "A", "1", true},
		{"different value", "A", "2", false},
		{"different name", "B", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HasExportLine(path, tt.key, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
