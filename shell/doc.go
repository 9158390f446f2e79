// Package shell detects the user's shell and resolves the startup file
// that persistent environment variables are written to.
//
// This package handles:
//   - Detecting the user's shell (bash, zsh)
//   - Locating the shell's startup file
//   - Reporting unsupported shells with a typed error
//
// # Shell Detection
//
// Shell detection tries multiple methods:
//  1. $SHELL environment variable (most reliable). When $SHELL is set it
//     is authoritative: an unsupported value fails rather than falling
//     back, so the caller never writes to a file the user's shell will
//     not read.
//  2. Parent process name detection (fallback when $SHELL is unset)
//
// # Startup Files
//
// The startup file is chosen so that the exported variables reach every
// new shell session:
//   - zsh:  ~/.zshenv
//   - bash: ~/.bashrc
//
// Other shells are not supported and yield an *UnsupportedShellError.
package shell
