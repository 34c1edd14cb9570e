package localstore

import (
	"encoding/json"
	"strings"

	"github.com/daarukart/storefront/internal/logger"
)

// Driver is the raw string store underneath the Store wrapper. Implementations
// may fail on write (quota, disk); the wrapper is what downgrades those
// failures for callers.
type Driver interface {
	ReadItem(key string) (string, bool, error)
	WriteItem(key, value string) error
	RemoveItem(key string) error
	Keys() ([]string, error)
}

// Store is the JSON key/value layer the rest of the application talks to.
// Every operation is synchronous and total: driver errors and corrupt records
// are logged here and reported as plain booleans, never propagated.
type Store struct {
	l *logger.Logger
	d Driver
}

func New(l *logger.Logger, d Driver) *Store {
	return &Store{l: l, d: d}
}

// Set serializes v and writes it under key. It reports false when
// serialization or the write fails; the failure is logged, not returned.
func (s *Store) Set(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.l.LogErrorf("localstore: marshal value for key %q: %v", key, err)

		return false
	}

	if err := s.d.WriteItem(key, string(data)); err != nil {
		s.l.LogErrorf("localstore: write key %q: %v", key, err)

		return false
	}

	return true
}

// Get reads key into dst. A missing key, a driver failure, or a corrupt stored
// record all report false; corruption is logged and treated as absent.
func (s *Store) Get(key string, dst any) bool {
	raw, found, err := s.d.ReadItem(key)
	if err != nil {
		s.l.LogErrorf("localstore: read key %q: %v", key, err)

		return false
	}

	if !found {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.l.LogWarnf("localstore: corrupt record under key %q, treating as absent: %v", key, err)

		return false
	}

	return true
}

func (s *Store) Remove(key string) {
	if err := s.d.RemoveItem(key); err != nil {
		s.l.LogErrorf("localstore: remove key %q: %v", key, err)
	}
}

// Clear removes every key this application owns and leaves foreign keys alone.
func (s *Store) Clear() {
	keys, err := s.d.Keys()
	if err != nil {
		s.l.LogErrorf("localstore: list keys: %v", err)

		return
	}

	for _, key := range keys {
		if strings.HasPrefix(key, keyPrefix) {
			s.Remove(key)
		}
	}
}
