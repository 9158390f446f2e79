package shell

import (
	"os"
	"path/filepath"
)

// ProfilePath returns the startup file persistent environment variables
// are written to for the given shell:
//   - zsh:  ~/.zshenv (sourced by every zsh invocation, not just
//     interactive ones)
//   - bash: ~/.bashrc
func ProfilePath(shell ShellType) (string, error) {
	if err := Validate(shell); err != nil {
		return "", err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", &VarError{Name: "HOME", Err: err}
	}

	switch shell {
	case ShellZsh:
		return filepath.Join(homeDir, ".zshenv"), nil
	case ShellBash:
		return filepath.Join(homeDir, ".bashrc"), nil
	default:
		return "", &UnsupportedShellError{Shell: shell.String()}
	}
}

// ResolveProfile detects the user's shell and returns its profile path.
// It fails with *UnsupportedShellError when the shell cannot be
// identified as bash or zsh.
func ResolveProfile() (string, error) {
	result, err := Detect()
	if err != nil {
		return "", err
	}

	if !result.Shell.IsValid() {
		if result.ShellPath == "" {
			// $SHELL was unset and no fallback identified a shell.
			return "", &VarError{Name: "SHELL"}
		}
		return "", &UnsupportedShellError{Shell: result.ShellPath}
	}

	return ProfilePath(result.Shell)
}
