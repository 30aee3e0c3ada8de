// Package envvar reads and writes environment variables at process scope
// and at the durable per-user scope.
package envvar

import (
	"fmt"
	"os"
	"sync"
)

// Scope selects where a variable lives.
type Scope int

const (
	// Process is the current process and children started after the write.
	Process Scope = iota
	// User persists for the OS user. Only processes launched after the
	// write observe it; running ones (an IDE, a build server) must restart.
	User
)

func (s Scope) String() string {
	switch s {
	case Process:
		return "process"
	case User:
		return "user"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Store is an environment accessor.
type Store interface {
	Get(scope Scope, key string) (string, bool)
	Set(scope Scope, key, value string) error
}

// UserStore persists variables for the current OS user.
type UserStore interface {
	Lookup(key string) (string, bool)
	Store(key, value string) error
	// Location describes where values end up, for reports.
	Location() string
}

// OSStore is the host environment.
type OSStore struct {
	user UserStore
}

// NewOSStore uses the platform's user-scope mechanism.
func NewOSStore() *OSStore {
	return &OSStore{user: defaultUserStore()}
}

// NewOSStoreWith overrides the user-scope backend.
func NewOSStoreWith(user UserStore) *OSStore {
	return &OSStore{user: user}
}

func (s *OSStore) Get(scope Scope, key string) (string, bool) {
	switch scope {
	case Process:
		return os.LookupEnv(key)
	case User:
		return s.user.Lookup(key)
	}
	return "", false
}

func (s *OSStore) Set(scope Scope, key, value string) error {
	switch scope {
	case Process:
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("set %s for process: %w", key, err)
		}
		return nil
	case User:
		if err := s.user.Store(key, value); err != nil {
			return fmt.Errorf("set %s for user: %w", key, err)
		}
		return nil
	}
	return fmt.Errorf("unknown %s", scope)
}

// UserLocation reports where user-scope values are stored.
func (s *OSStore) UserLocation() string {
	return s.user.Location()
}

// Write is one recorded MapStore.Set call.
type Write struct {
	Scope Scope
	Key   string
	Value string
}

// MapStore keeps variables in memory.
type MapStore struct {
	mu     sync.Mutex
	vals   map[Scope]map[string]string
	writes []Write
}

func NewMapStore() *MapStore {
	return &MapStore{vals: map[Scope]map[string]string{}}
}

func (m *MapStore) Get(scope Scope, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vals[scope][key]
	return v, ok
}

func (m *MapStore) Set(scope Scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vals[scope] == nil {
		m.vals[scope] = map[string]string{}
	}
	m.vals[scope][key] = value
	m.writes = append(m.writes, Write{Scope: scope, Key: key, Value: value})
	return nil
}

// Writes returns every Set call in order.
func (m *MapStore) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Write(nil), m.writes...)
}
