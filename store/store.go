// Package store holds the variables shared by successive statements.
package store

import (
	"strconv"
	"strings"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
)

// Entry is a single variable binding.
type Entry struct {
	Name  string
	Value float64
}

// Store maps variable names to their current value.
// Iteration follows insertion order, overwriting a variable keeps its position.
// Individual operations, Commit included, are safe for concurrent use.
// A read followed by a write is not: callers doing read-modify-write
// (x += 1 from two evaluators) must serialize those themselves.
type Store struct {
	mu   sync.RWMutex
	vars *orderedmap.OrderedMap[string, float64]
}

// New returns an empty store.
func New() *Store {
	return &Store{vars: orderedmap.NewOrderedMap[string, float64]()}
}

// Get returns the value of name and whether it is defined.
func (s *Store) Get(name string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vars.Get(name)
}

// Set inserts or overwrites name.
func (s *Store) Set(name string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars.Set(name, value)
}

// Has reports whether name is defined.
func (s *Store) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Commit applies the writes in order, atomically with regard to other store operations.
func (s *Store) Commit(writes []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range writes {
		s.vars.Set(w.Name, w.Value)
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vars.Len()
}

// Clear removes every variable.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars = orderedmap.NewOrderedMap[string, float64]()
}

// All returns a snapshot of the variables in insertion order.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]Entry, 0, s.vars.Len())
	for el := s.vars.Front(); el != nil; el = el.Next() {
		entries = append(entries, Entry{Name: el.Key, Value: el.Value})
	}
	return entries
}

// String renders the store as (a=1,b=2.5).
func (s *Store) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range s.All() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(e.Name)
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatFloat(e.Value, 'f', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
