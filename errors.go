package permaenv

import (
	"fmt"
	"strings"
)

// ValidationError reports an assignment that cannot be represented in
// the persisted store.
type ValidationError struct {
	Name    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid assignment %q: %s", e.Name, e.Message)
}

// validateName rejects names the line format or the registry cannot
// hold: empty names and names containing '=', NUL or newlines.
func validateName(name string) error {
	if name == "" {
		return &ValidationError{Name: name, Message: "name must not be empty"}
	}
	if strings.ContainsAny(name, "=\x00\n\r") {
		return &ValidationError{Name: name, Message: "name must not contain '=', NUL or newlines"}
	}
	return nil
}

// validateValue rejects values with embedded newlines, which would
// corrupt the line-oriented rc file format.
func validateValue(name, value string) error {
	if strings.ContainsAny(value, "\n\r") {
		return &ValidationError{Name: name, Message: "value must not contain newlines"}
	}
	return nil
}
