package parallel

import "sync"

// StateSet is a thread-safe set of state fingerprints reached at one success level.
// When the level changes, all existing fingerprints are forgotten.
type StateSet struct {
	mu    sync.RWMutex
	set   map[[32]byte]struct{}
	level int
}

// NewStateSet creates an empty set at level 0
func NewStateSet() *StateSet {
	return &StateSet{
		set: make(map[[32]byte]struct{}),
	}
}

// Insert adds state at level and reports whether it was new. A level different
// from the current one clears the set first.
func (m *StateSet) Insert(state [32]byte, level int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.level != level {
		m.set = make(map[[32]byte]struct{})
		m.level = level
	}
	if _, ok := m.set[state]; ok {
		return false
	}
	m.set[state] = struct{}{}
	return true
}

// Exists checks whether state was inserted at level
func (m *StateSet) Exists(state [32]byte, level int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.level != level {
		return false
	}
	_, ok := m.set[state]
	return ok
}

// Len gets the number of states at the current level
func (m *StateSet) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.set)
}
