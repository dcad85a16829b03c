// Package storage provides Backend implementations.
package storage

import "sync"

// =============================================================================
// MEMORY BACKEND - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes Set/Remove/Clear report failure, simulating a
	// quota-exceeded or disabled backing store.
	FailWrites bool
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true
}

func (m *Memory) Set(key string, value []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return false
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return true
}

func (m *Memory) Remove(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return false
	}
	delete(m.data, key)
	return true
}

func (m *Memory) Clear() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return false
	}
	m.data = make(map[string][]byte)
	return true
}

// Keys returns the currently stored keys. Test helper.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}
