// Package store implements the goal-keyed storage of learned Q-tables
package store

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Store maps goal keys to learned Q-tables. Entries are created on the
// first Put for a goal, overwritten whole on retraining, and never
// evicted; the Store lives as long as the process (or whatever owns
// it).
//
// Tables are published on completion: trainers build a scratch table
// and Put it only once training finishes, so a concurrent Get observes
// either the previous fully-trained table or the new one, never a
// half-updated table. After Put, the table must not be mutated.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*mat.Dense
}

// New creates a new empty Store
func New() *Store {
	return &Store{tables: make(map[string]*mat.Dense)}
}

// Get returns the Q-table stored for the argument goal key, and
// whether one exists
func (s *Store) Get(key string) (*mat.Dense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.tables[key]
	return table, ok
}

// Put stores a Q-table under the argument goal key, replacing any
// previous table for that goal
func (s *Store) Put(key string, qTable *mat.Dense) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables[key] = qTable
}

// Keys returns the goal keys with stored tables, sorted
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.tables))
	for key := range s.tables {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
