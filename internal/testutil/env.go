// Package testutil provides utilities for testing permaenv in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv points HOME at a fresh temp directory and sets SHELL,
// so tests exercising shell resolution never touch the user's real
// startup files. It returns the isolated home directory.
//
// Cleanup is handled by t.TempDir and t.Setenv, so callers don't need
// to restore anything.
func SetupTestEnv(t *testing.T, shellPath string) string {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0o750); err != nil {
		t.Fatalf("failed to create test home directory %s: %v", home, err)
	}

	t.Setenv("HOME", home)
	t.Setenv("SHELL", shellPath)

	return home
}
