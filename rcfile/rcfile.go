package rcfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// BackupSuffix is appended to the profile path when a backup is written.
const BackupSuffix = ".permaenv-backup"

// FileError represents an error with startup-file operations
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rc file %s (%s): %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("rc file %s (%s)", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ExportLine returns the literal statement persisted for an assignment,
// without a trailing newline.
func ExportLine(name, value string) string {
	return fmt.Sprintf("export %s=%s", name, value)
}

// exportPrefix is the token that identifies every line owned by name.
// Matching on this exact prefix (rather than any occurrence of the
// variable name) keeps unrelated lines that merely mention the name,
// such as comments or assignments of FOO when removing FO.
func exportPrefix(name string) string {
	return "export " + name + "="
}

// HasExportLine reports whether the file already contains the exact
// export statement for name=value. A missing file counts as absent.
func HasExportLine(path, name, value string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &FileError{Path: path, Op: "open", Err: err}
	}
	defer file.Close()

	// Compare the raw line (the scanner already strips the line
	// terminator): trimming would break values with trailing
	// whitespace, which are valid and must dedupe against themselves.
	want := ExportLine(name, value)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if scanner.Text() == want {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, &FileError{Path: path, Op: "read", Err: err}
	}

	return false, nil
}

// HasExport reports whether any line is owned by name, using the same
// exact-prefix match as RemoveExport. A missing file counts as absent.
func HasExport(path, name string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &FileError{Path: path, Op: "open", Err: err}
	}
	defer file.Close()

	prefix := exportPrefix(name)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.HasPrefix(strings.TrimSpace(scanner.Text()), prefix) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, &FileError{Path: path, Op: "read", Err: err}
	}

	return false, nil
}

// AppendExport ensures the file contains `export name=value`. If the
// exact line is already present nothing is written and added is false.
// Otherwise the line is appended through an atomic temp-file + rename,
// creating the file when it does not exist.
func AppendExport(path, name, value string) (added bool, err error) {
	present, err := HasExportLine(path, name, value)
	if err != nil {
		return false, err
	}
	if present {
		return false, nil
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, &FileError{Path: path, Op: "read", Err: err}
	}

	content := string(existing)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += ExportLine(name, value) + "\n"

	if err := writeAtomic(path, []byte(content)); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveExport removes every line whose trimmed text starts with
// `export name=`. When the file is missing or holds no such line the
// file is left untouched and removed is false.
func RemoveExport(path, name string) (removed bool, err error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &FileError{Path: path, Op: "read", Err: err}
	}

	prefix := exportPrefix(name)
	lines := strings.Split(strings.TrimSuffix(string(existing), "\n"), "\n")

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			removed = true
			continue
		}
		kept = append(kept, line)
	}

	if !removed {
		return false, nil
	}

	content := strings.Join(kept, "\n")
	if content != "" {
		content += "\n"
	}

	if err := writeAtomic(path, []byte(content)); err != nil {
		return false, err
	}
	return true, nil
}

// Parse reads the persisted assignments from the file. Lines are parsed
// with godotenv, which understands the `export NAME=VALUE` statements
// this package writes. A missing file yields an empty map. Profiles
// holding arbitrary shell code beyond comments and assignments may fail
// to parse.
func Parse(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, &FileError{Path: path, Op: "open", Err: err}
	}
	defer file.Close()

	vars, err := godotenv.Parse(file)
	if err != nil {
		return nil, &FileError{Path: path, Op: "parse", Err: err}
	}
	return vars, nil
}

// Backup writes a copy of the file next to it with BackupSuffix and
// returns the backup path.
func Backup(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Op: "read", Err: err}
	}

	backupPath := path + BackupSuffix
	if err := os.WriteFile(backupPath, content, 0644); err != nil {
		return "", &FileError{Path: backupPath, Op: "write", Err: err}
	}

	return backupPath, nil
}

// writeAtomic replaces the file's content via a temp file in the same
// directory followed by a rename. An existing file keeps its mode; a
// new file is created 0644.
func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &FileError{Path: path, Op: "create parent directory", Err: err}
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(dir, ".permaenv-tmp-*")
	if err != nil {
		return &FileError{Path: path, Op: "create temp file", Err: err}
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	// CreateTemp creates the file 0600; the rename would otherwise
	// carry that over to the startup file.
	if err := tmpFile.Chmod(mode); err != nil {
		tmpFile.Close()
		return &FileError{Path: path, Op: "chmod", Err: err}
	}

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return &FileError{Path: path, Op: "write", Err: err}
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return &FileError{Path: path, Op: "sync", Err: err}
	}
	tmpFile.Close()

	if err := os.Rename(tmpPath, path); err != nil {
		return &FileError{Path: path, Op: "rename", Err: err}
	}
	return nil
}
