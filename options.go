package permaenv

import "github.com/alexflint/go-filemutex"

// Option configures a Store.
type Option func(*Store) error

// WithEnv substitutes the process-environment collaborator. Intended
// for tests that must not mutate the real process environment.
func WithEnv(env Env) Option {
	return func(s *Store) error {
		s.env = env
		return nil
	}
}

// WithLogger installs a Logger. The default logger discards everything.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithProfile pins the startup file assignments are persisted to,
// bypassing shell detection. It has no effect on Windows, where the
// registry is always the backing store.
func WithProfile(path string) Option {
	return func(s *Store) error {
		s.profile = path
		return nil
	}
}

// WithBackup writes a copy of the startup file next to it before a
// rewrite. Operations that turn out to be no-ops leave any earlier
// backup in place. It has no effect on Windows.
func WithBackup() Option {
	return func(s *Store) error {
		s.backup = true
		return nil
	}
}

// WithFileLock guards each operation with a cross-process advisory lock
// on the given path. Without it, concurrent Set/Unset calls from
// multiple processes can race on the read-modify-write of the startup
// file and lose updates.
func WithFileLock(path string) Option {
	return func(s *Store) error {
		m, err := filemutex.New(path)
		if err != nil {
			return err
		}
		s.lock = m
		return nil
	}
}
