// Package pqueue is the AADT simulator for a priority queue: a multiset
// ordered by value, INSERT adds, POLL/PEEK observe and (for POLL) remove
// the maximum.
package pqueue

import (
	"sort"

	"github.com/katalvlaran/fptlin/history"
)

// Simulator is a multiset of int64 values kept sorted ascending so the
// maximum is always the last element, mirroring the ordered-iteration
// guarantee std::multiset provides.
type Simulator struct {
	empty  int64
	values []int64
}

// New returns a priority-queue simulator. empty is the reserved sentinel a
// POLL/PEEK on an empty queue is expected to report.
func New(empty int64) *Simulator {
	return &Simulator{empty: empty}
}

func (s *Simulator) Apply(o *history.Operation[int64]) bool {
	switch o.Method {
	case history.INSERT:
		s.insert(o.Value)
		return true

	case history.POLL:
		if len(s.values) == 0 {
			return o.Value == s.empty
		}
		if s.max() == o.Value {
			s.removeOne(o.Value)
			return true
		}
		return false

	case history.PEEK:
		if len(s.values) == 0 {
			return o.Value == s.empty
		}
		return s.max() == o.Value
	}
	return false
}

// Undo reverses an INSERT by removing one instance of the inserted value,
// and reverses a POLL that actually removed a value by re-inserting it.
// A POLL observed against an empty queue (value == empty) never mutated
// state, so its undo is a no-op; a PEEK never mutates state either way.
// This departs from the source's literal switch-fallthrough, which erases
// unconditionally for both INSERT and POLL.
func (s *Simulator) Undo(o *history.Operation[int64]) {
	switch o.Method {
	case history.INSERT:
		s.removeOne(o.Value)
	case history.POLL:
		if o.Value != s.empty {
			s.insert(o.Value)
		}
	case history.PEEK:
	}
}

func (s *Simulator) max() int64 {
	return s.values[len(s.values)-1]
}

func (s *Simulator) insert(v int64) {
	i := sort.Search(len(s.values), func(i int) bool { return s.values[i] > v })
	s.values = append(s.values, 0)
	copy(s.values[i+1:], s.values[i:])
	s.values[i] = v
}

func (s *Simulator) removeOne(v int64) {
	i := sort.Search(len(s.values), func(i int) bool { return s.values[i] >= v })
	if i < len(s.values) && s.values[i] == v {
		s.values = append(s.values[:i], s.values[i+1:]...)
	}
}
