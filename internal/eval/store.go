package eval

import (
	"maps"
	"slices"
)

// Store maps variable names to values. Only `let` writes to it.
type Store struct {
	vals map[string]int64
}

func newStore() *Store {
	return &Store{vals: make(map[string]int64)}
}

// Get returns the value bound to name.
func (s *Store) Get(name string) (int64, bool) {
	v, ok := s.vals[name]
	return v, ok
}

func (s *Store) Len() int {
	return len(s.vals)
}

// Names returns the bound names in sorted order.
func (s *Store) Names() []string {
	return slices.Sorted(maps.Keys(s.vals))
}

// Snapshot returns a copy that the caller may modify.
func (s *Store) Snapshot() map[string]int64 {
	return maps.Clone(s.vals)
}

func (s *Store) set(name string, v int64) {
	s.vals[name] = v
}
