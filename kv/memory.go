package kv

import "sync"

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory is an in-memory Store. Safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Len returns the number of stored keys. Test helper.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// =============================================================================
// FAILING STORE - Test double that fails every call
// =============================================================================

// Failing is a Store whose every call returns Err. Used to exercise the
// store-unavailable error path without a real broken backend.
type Failing struct {
	Err error
}

func (f Failing) Get(string) (string, bool, error) { return "", false, f.Err }
func (f Failing) Set(string, string) error         { return f.Err }
