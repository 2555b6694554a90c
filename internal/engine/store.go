package engine

import (
	"errors"
	"fmt"
	"sync"

	"unitengine/internal/quantity"
)

var (
	ErrColumnNotFound = errors.New("engine: column not found")
	ErrMixedUnits     = errors.New("engine: column mixes units")
	ErrLengthMismatch = errors.New("engine: column lengths differ")
	ErrUnknownOp      = errors.New("engine: unknown operation")
	ErrEmpty          = errors.New("engine: column has no values")
	ErrMalformed      = errors.New("engine: malformed data")
)

// Column holds one quantity column in Struct-of-Arrays form: a flat value
// slice plus the single unit every row is measured in. Nulls are NaN.
type Column struct {
	Name   string
	Values []float64
	Unit   quantity.Units
}

func (c *Column) Len() int {
	return len(c.Values)
}

// Store is a named set of columns. Readers share it freely; Swap replaces
// the whole set at once when the data file is reloaded.
type Store struct {
	mu      sync.RWMutex
	columns map[string]*Column
	names   []string
}

// NewStore keeps columns in the order given. A later column with the same
// name replaces the earlier one.
func NewStore(cols ...*Column) *Store {
	s := &Store{columns: make(map[string]*Column, len(cols))}
	for _, c := range cols {
		if _, ok := s.columns[c.Name]; !ok {
			s.names = append(s.names, c.Name)
		}
		s.columns[c.Name] = c
	}
	return s
}

func (s *Store) Column(name string) (*Column, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return c, nil
}

func (s *Store) Columns() []*Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Column, len(s.names))
	for i, name := range s.names {
		out[i] = s.columns[name]
	}
	return out
}

func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.names...)
}

// Rows is the length of the longest column.
func (s *Store) Rows() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := 0
	for _, c := range s.columns {
		rows = max(rows, c.Len())
	}
	return rows
}

// Swap takes over other's columns. other must not be used afterwards.
func (s *Store) Swap(other *Store) {
	other.mu.Lock()
	columns, names := other.columns, other.names
	other.mu.Unlock()

	s.mu.Lock()
	s.columns, s.names = columns, names
	s.mu.Unlock()
}
