package localstore

import (
	"fmt"
	"sync"
)

// Memory is a map-backed driver. Quota limits the total byte size of stored
// values, mirroring how a browser profile store can fill up; zero means
// unlimited.
type Memory struct {
	mu    sync.Mutex
	items map[string]string
	quota int
	used  int
}

func NewMemory(quota int) *Memory {
	return &Memory{
		items: make(map[string]string),
		quota: quota,
	}
}

func (m *Memory) ReadItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.items[key]

	return value, ok, nil
}

func (m *Memory) WriteItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.used - len(m.items[key]) + len(value)
	if m.quota > 0 && next > m.quota {
		return fmt.Errorf("write %q (%d bytes, %d used of %d): %w", key, len(value), m.used, m.quota, ErrQuotaExceeded)
	}

	m.items[key] = value
	m.used = next

	return nil
}

func (m *Memory) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.used -= len(m.items[key])
	delete(m.items, key)

	return nil
}

func (m *Memory) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.items))
	for key := range m.items {
		keys = append(keys, key)
	}

	return keys, nil
}
