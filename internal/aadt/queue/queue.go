// Package queue is the AADT simulator for a FIFO queue. It resolves the
// queue engine as an instance of the apply/undo search (internal/aadt)
// rather than a bespoke grammar: see internal/queuegrammar and DESIGN.md's
// "Open Question: queue grammar" entry for why. ENQ always succeeds and
// appends to the back; DEQ/PEEK succeed iff the requested value matches
// the current front, or the queue is empty and the value is the reserved
// empty sentinel.
package queue

import "github.com/katalvlaran/fptlin/history"

// Simulator is a FIFO sequence of int64 values.
type Simulator struct {
	empty  int64
	values []int64
}

// New returns a queue simulator. empty is the reserved sentinel a
// DEQ/PEEK against an empty queue is expected to report.
func New(empty int64) *Simulator {
	return &Simulator{empty: empty}
}

func (s *Simulator) Apply(o *history.Operation[int64]) bool {
	switch o.Method {
	case history.ENQ:
		s.values = append(s.values, o.Value)
		return true

	case history.DEQ:
		if len(s.values) == 0 {
			return o.Value == s.empty
		}
		if s.values[0] == o.Value {
			s.values = s.values[1:]
			return true
		}
		return false

	case history.PEEK:
		if len(s.values) == 0 {
			return o.Value == s.empty
		}
		return s.values[0] == o.Value
	}
	return false
}

// Undo reverses an ENQ by popping the value it appended off the back, and
// reverses a DEQ that actually removed the front by pushing it back on.
// A DEQ observed against an empty queue, and every PEEK, never mutated
// state, so their undo is a no-op.
func (s *Simulator) Undo(o *history.Operation[int64]) {
	switch o.Method {
	case history.ENQ:
		s.values = s.values[:len(s.values)-1]
	case history.DEQ:
		if o.Value != s.empty {
			s.values = append([]int64{o.Value}, s.values...)
		}
	case history.PEEK:
	}
}
