package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Detect detects the user's shell using multiple methods
func Detect() (*DetectionResult, error) {
	// Method 1: $SHELL environment variable (most reliable).
	// When $SHELL is set it is authoritative: an unsupported value is
	// reported as unknown rather than falling through to the parent
	// process, so a fish user gets a clear error instead of whatever
	// shell happens to be an ancestor of this process.
	if shell := os.Getenv("SHELL"); shell != "" {
		shellType := parseShellFromPath(shell)
		if shellType.IsValid() {
			return &DetectionResult{
				Shell:      shellType,
				Method:     "$SHELL environment variable",
				ShellPath:  shell,
				Confidence: "high",
			}, nil
		}
		return &DetectionResult{
			Shell:      ShellUnknown,
			Method:     "$SHELL environment variable",
			ShellPath:  shell,
			Confidence: "high",
		}, nil
	}

	// Method 2: Try parent process (fallback)
	if shellType, shellPath := detectFromParentProcess(); shellType.IsValid() {
		return &DetectionResult{
			Shell:      shellType,
			Method:     "parent process",
			ShellPath:  shellPath,
			Confidence: "medium",
		}, nil
	}

	// Method 3: Could not detect shell
	return &DetectionResult{
		Shell:      ShellUnknown,
		Method:     "detection failed",
		ShellPath:  "",
		Confidence: "none",
	}, nil
}

// parseShellFromPath extracts the shell type from a shell binary path
// Examples:
//   - /bin/bash -> bash
//   - /usr/bin/zsh -> zsh
func parseShellFromPath(shellPath string) ShellType {
	// Get the base name (e.g., "/bin/bash" -> "bash")
	baseName := filepath.Base(shellPath)

	// Normalize to lowercase
	baseName = strings.ToLower(baseName)

	// Map to known shell types
	switch baseName {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	default:
		return ShellUnknown
	}
}

// detectFromParentProcess attempts to detect the shell from the parent
// process. This is a fallback when $SHELL is not set.
func detectFromParentProcess() (ShellType, string) {
	proc, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return ShellUnknown, ""
	}

	name, err := proc.Name()
	if err != nil {
		return ShellUnknown, ""
	}

	shellType := parseShellFromPath(name)
	if !shellType.IsValid() {
		return ShellUnknown, ""
	}

	// Exe gives the full binary path when available; the bare name is
	// still enough to identify the shell when it is not.
	shellPath, err := proc.Exe()
	if err != nil || shellPath == "" {
		shellPath = name
	}

	return shellType, shellPath
}

// Validate validates that a shell type is supported
func Validate(shell ShellType) error {
	if !shell.IsValid() {
		return &UnsupportedShellError{Shell: shell.String()}
	}
	return nil
}

// Supported returns a list of supported shells
func Supported() []ShellType {
	return []ShellType{ShellBash, ShellZsh}
}
