package permaenv

// Backend persists assignments in the OS-native configuration store.
// The implementation is selected at compile time: a registry backend on
// Windows and a shell startup-file backend elsewhere.
type Backend interface {
	// Set persists name=value.
	Set(name, value string) error
	// Unset removes name from the persisted store.
	Unset(name string) error
	// Vars returns every persisted assignment.
	Vars() (map[string]string, error)
}
