// Package ledger provides file-backed and in-memory implementations of
// shard.FragmentLedger, the overlap ledger C6 consults and commits to.
package ledger

import "sync"

// Memory is a process-local FragmentLedger backed by a mutex-guarded
// set. Suitable for tests and single-process use; it provides no
// durability and no cross-process linearizability.
type Memory struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewMemory constructs an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{seen: make(map[string]struct{})}
}

// Save records key, idempotently.
func (m *Memory) Save(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen[key] = struct{}{}
	return nil
}

// Contains reports whether key has been recorded.
func (m *Memory) Contains(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.seen[key]
	return ok, nil
}
