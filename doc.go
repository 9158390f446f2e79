// Package permaenv sets and unsets environment variables globally, not
// just for the current process.
//
// On Windows, variables are written to the per-user registry key
// HKEY_CURRENT_USER\Environment. On Unix-like systems they are written
// as `export NAME=VALUE` lines to the shell startup file selected by
// $SHELL (zsh: ~/.zshenv, bash: ~/.bashrc; other shells are not
// supported). In both cases the change is also mirrored into the
// current process environment, so the new value is usable immediately
// without reloading the shell.
//
//	if err := permaenv.Set("ENVTEST", "TESTVALUE"); err != nil {
//		// ...
//	}
//	if err := permaenv.Unset("ENVTEST"); err != nil {
//		// ...
//	}
//
// The persisted write always happens first: when it fails, the process
// environment is left untouched.
//
// # Errors
//
// Failures carry typed errors that can be unwrapped with errors.As:
// *shell.UnsupportedShellError when $SHELL is not bash or zsh,
// *shell.VarError when $HOME or $SHELL cannot be resolved,
// *rcfile.FileError and *winreg.KeyError for I/O failures, and
// *ValidationError for names or values the stores cannot represent.
// Nothing is retried or recovered internally.
//
// # Concurrency
//
// Operations are synchronous and perform no locking by default:
// concurrent Set/Unset calls from multiple processes can race on the
// startup file's read-modify-write and lose updates. This is an
// accepted limitation. Callers that need cross-process exclusion can
// opt in with WithFileLock.
package permaenv
