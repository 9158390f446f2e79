package permaenv

import "os"

// Env abstracts process environment access so tests can substitute a
// fake instead of mutating the real process environment.
type Env interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
}

// osEnv implements Env using the standard os package.
type osEnv struct{}

// OSEnv returns the Env backed by the real process environment.
func OSEnv() Env {
	return osEnv{}
}

func (osEnv) Getenv(key string) string { return os.Getenv(key) }

func (osEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (osEnv) Setenv(key, value string) error { return os.Setenv(key, value) }

func (osEnv) Unsetenv(key string) error { return os.Unsetenv(key) }
