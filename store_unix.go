//go:build !windows

package permaenv

import (
	"os"

	"github.com/permaenv/permaenv/rcfile"
	"github.com/permaenv/permaenv/shell"
)

// rcBackend persists assignments as export lines in the shell startup
// file. The profile is resolved on every call unless pinned.
type rcBackend struct {
	profile string
	backup  bool
	logger  Logger
}

func newPlatformBackend(s *Store) Backend {
	return &rcBackend{
		profile: s.profile,
		backup:  s.backup,
		logger:  s.logger,
	}
}

func (b *rcBackend) resolve() (string, error) {
	if b.profile != "" {
		return b.profile, nil
	}
	return shell.ResolveProfile()
}

// backupIfPresent copies the profile aside before it is rewritten.
// Callers invoke it only when a rewrite is about to happen, so a
// no-op Set or Unset never replaces an earlier backup. A profile that
// does not exist yet has nothing worth backing up.
func (b *rcBackend) backupIfPresent(path string) error {
	if !b.backup {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	backupPath, err := rcfile.Backup(path)
	if err != nil {
		return err
	}
	b.logger.Debug("wrote profile backup", "path", backupPath)
	return nil
}

func (b *rcBackend) Set(name, value string) error {
	path, err := b.resolve()
	if err != nil {
		return err
	}

	present, err := rcfile.HasExportLine(path, name, value)
	if err != nil {
		return err
	}
	if !present {
		if err := b.backupIfPresent(path); err != nil {
			return err
		}
	}

	added, err := rcfile.AppendExport(path, name, value)
	if err != nil {
		return err
	}

	b.logger.Debug("persisted export line", "profile", path, "name", name, "added", added)
	return nil
}

func (b *rcBackend) Unset(name string) error {
	path, err := b.resolve()
	if err != nil {
		return err
	}

	present, err := rcfile.HasExport(path, name)
	if err != nil {
		return err
	}
	if present {
		if err := b.backupIfPresent(path); err != nil {
			return err
		}
	}

	removed, err := rcfile.RemoveExport(path, name)
	if err != nil {
		return err
	}

	b.logger.Debug("removed export line", "profile", path, "name", name, "removed", removed)
	return nil
}

func (b *rcBackend) Vars() (map[string]string, error) {
	path, err := b.resolve()
	if err != nil {
		return nil, err
	}
	return rcfile.Parse(path)
}
