package permaenv

import "github.com/alexflint/go-filemutex"

// Store persists environment variables in the OS-native configuration
// store and mirrors every change into the current process environment.
//
// A Store holds no state about the backing store between calls: every
// operation resolves, opens and closes it afresh.
type Store struct {
	backend Backend
	env     Env
	logger  Logger
	lock    *filemutex.FileMutex

	// Unix startup-file knobs; ignored by the registry backend.
	profile string
	backup  bool
}

// New creates a Store with the platform backend and the given options.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		env:    OSEnv(),
		logger: defaultLogger(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.backend = newPlatformBackend(s)
	return s, nil
}

// Set persists name=value and mirrors it into the current process
// environment. The persisted write happens first; when it fails the
// process environment is left untouched.
func (s *Store) Set(name, value string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateValue(name, value); err != nil {
		return err
	}

	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if err := s.backend.Set(name, value); err != nil {
		return err
	}
	if err := s.env.Setenv(name, value); err != nil {
		return err
	}

	s.logger.Debug("set variable", "name", name)
	return nil
}

// Unset removes name from the persisted store and from the current
// process environment.
func (s *Store) Unset(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if err := s.backend.Unset(name); err != nil {
		return err
	}
	if err := s.env.Unsetenv(name); err != nil {
		return err
	}

	s.logger.Debug("unset variable", "name", name)
	return nil
}

// Lookup reads name from the persisted store (not the process
// environment) and reports whether it is present.
func (s *Store) Lookup(name string) (string, bool, error) {
	if err := validateName(name); err != nil {
		return "", false, err
	}

	vars, err := s.backend.Vars()
	if err != nil {
		return "", false, err
	}
	value, ok := vars[name]
	return value, ok, nil
}

// Vars returns every assignment held by the persisted store.
func (s *Store) Vars() (map[string]string, error) {
	return s.backend.Vars()
}

func (s *Store) acquire() error {
	if s.lock == nil {
		return nil
	}
	return s.lock.Lock()
}

func (s *Store) release() {
	if s.lock == nil {
		return
	}
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("release file lock", "error", err)
	}
}

// Set persists name=value with a default Store. See Store.Set.
func Set(name, value string) error {
	s, err := New()
	if err != nil {
		return err
	}
	return s.Set(name, value)
}

// Unset removes name with a default Store. See Store.Unset.
func Unset(name string) error {
	s, err := New()
	if err != nil {
		return err
	}
	return s.Unset(name)
}

// Lookup reads name from the persisted store with a default Store.
func Lookup(name string) (string, bool, error) {
	s, err := New()
	if err != nil {
		return "", false, err
	}
	return s.Lookup(name)
}

// Vars returns every persisted assignment with a default Store.
func Vars() (map[string]string, error) {
	s, err := New()
	if err != nil {
		return nil, err
	}
	return s.Vars()
}
