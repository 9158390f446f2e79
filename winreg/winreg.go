//go:build windows

package winreg

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// envKeyPath is the per-user environment key, relative to HKCU.
const envKeyPath = `Environment`

// KeyError represents a registry operation failure
type KeyError struct {
	Op    string
	Value string
	Err   error
}

func (e *KeyError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("registry %s %q: %v", e.Op, e.Value, e.Err)
	}
	return fmt.Sprintf("registry %s: %v", e.Op, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// SetValue writes name=value as a string value under HKCU\Environment.
func SetValue(name, value string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.SET_VALUE)
	if err != nil {
		return &KeyError{Op: "open", Err: err}
	}
	defer key.Close()

	if err := key.SetStringValue(name, value); err != nil {
		return &KeyError{Op: "set", Value: name, Err: err}
	}
	return nil
}

// DeleteValue removes name from HKCU\Environment. Deleting a value that
// does not exist is an error.
func DeleteValue(name string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.SET_VALUE)
	if err != nil {
		return &KeyError{Op: "open", Err: err}
	}
	defer key.Close()

	if err := key.DeleteValue(name); err != nil {
		return &KeyError{Op: "delete", Value: name, Err: err}
	}
	return nil
}

// GetValue reads the string value for name from HKCU\Environment.
func GetValue(name string) (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", &KeyError{Op: "open", Err: err}
	}
	defer key.Close()

	value, _, err := key.GetStringValue(name)
	if err != nil {
		return "", &KeyError{Op: "get", Value: name, Err: err}
	}
	return value, nil
}

// Values returns every string value under HKCU\Environment.
func Values() (map[string]string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return nil, &KeyError{Op: "open", Err: err}
	}
	defer key.Close()

	names, err := key.ReadValueNames(0)
	if err != nil {
		return nil, &KeyError{Op: "list", Err: err}
	}

	out := make(map[string]string, len(names))
	for _, name := range names {
		value, _, err := key.GetStringValue(name)
		if err != nil {
			// Skip non-string values written by other software.
			continue
		}
		out[name] = value
	}
	return out, nil
}
