package store

import (
	"sync"

	"tableflip.dev/calabacita/pkg/reminder"
)

// Memory is an in-process reminder.KV. Nothing survives the process.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte

	// WriteErr, when set, is returned by every Write.
	WriteErr error
}

var (
	_ reminder.KV     = (*Memory)(nil)
	_ reminder.Eraser = (*Memory)(nil)
)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, reminder.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	m.values[key] = append([]byte(nil), val...)
	return nil
}

// Erase removes key. Erasing a missing key is not an error.
func (m *Memory) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	delete(m.values, key)
	return nil
}
