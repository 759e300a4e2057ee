// Package entitylock serializes mutations to a single entity's ratchet and
// keystore state with a concurrent map of per-eid mutexes, so concurrent
// RPCs against the same entity never race on its persisted state.
package entitylock

import "sync"

// Map is a concurrent map of eid -> mutex, pruned when an entity is deleted.
type Map struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New returns an empty Map.
func New() *Map {
	return &Map{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for eid, creating it on first use. The returned
// func releases it.
func (m *Map) Lock(eid string) func() {
	m.mu.Lock()
	l, ok := m.locks[eid]
	if !ok {
		l = &sync.Mutex{}
		m.locks[eid] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Delete removes eid's mutex entry once the entity itself is gone.
func (m *Map) Delete(eid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, eid)
}
