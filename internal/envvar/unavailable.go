package envvar

import "fmt"

// unavailableStore stands in when the user scope can't be located.
type unavailableStore struct {
	err error
}

func (u unavailableStore) Lookup(string) (string, bool) { return "", false }

func (u unavailableStore) Store(string, string) error {
	return fmt.Errorf("user environment unavailable: %w", u.err)
}

func (u unavailableStore) Location() string { return "(unavailable)" }
