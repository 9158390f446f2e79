//go:build windows

package permaenv

import "github.com/permaenv/permaenv/winreg"

// registryBackend persists assignments as string values under the
// per-user Environment registry key.
type registryBackend struct {
	logger Logger
}

func newPlatformBackend(s *Store) Backend {
	return &registryBackend{logger: s.logger}
}

func (b *registryBackend) Set(name, value string) error {
	if err := winreg.SetValue(name, value); err != nil {
		return err
	}
	b.logger.Debug("persisted registry value", "name", name)
	return nil
}

// Unset deletes the registry value. Deleting a value that does not
// exist is an error, matching the registry's own semantics.
func (b *registryBackend) Unset(name string) error {
	if err := winreg.DeleteValue(name); err != nil {
		return err
	}
	b.logger.Debug("deleted registry value", "name", name)
	return nil
}

func (b *registryBackend) Vars() (map[string]string, error) {
	return winreg.Values()
}
