package resilience

import "sync"

// KeyedMutex serializes critical sections per key. It backs the per-user
// locking around read-then-write invariant checks (featured slot capacity,
// duplicate-rating detection, follow toggles) in a single-process deployment.
// Locks are never evicted; the key space here is bounded by the user table.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[int64]*sync.Mutex)}
}

func (m *KeyedMutex) Lock(key int64) {
	m.mu.Lock()
	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	m.mu.Unlock()

	lock.Lock()
}

func (m *KeyedMutex) Unlock(key int64) {
	m.mu.Lock()
	lock, ok := m.locks[key]
	m.mu.Unlock()
	if ok {
		lock.Unlock()
	}
}
