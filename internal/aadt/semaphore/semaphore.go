// Package semaphore is the AADT simulator for a non-negative counting
// semaphore: INCR always succeeds, DECR succeeds iff the count is nonzero,
// and every operation's reported outcome is a boolean in the history
// payload (true = "this call is expected to succeed").
package semaphore

import "github.com/katalvlaran/fptlin/history"

// Simulator is a non-negative counter.
type Simulator struct {
	count uint32
}

// New returns a semaphore simulator starting at zero.
func New() *Simulator {
	return &Simulator{}
}

func (s *Simulator) Apply(o *history.Operation[bool]) bool {
	if !o.Value {
		return s.count == 0
	}

	switch o.Method {
	case history.INCR:
		s.count++
		return true
	case history.DECR:
		if s.count == 0 {
			return false
		}
		s.count--
		return true
	}
	return false
}

func (s *Simulator) Undo(o *history.Operation[bool]) {
	if !o.Value {
		return
	}
	if o.Method == history.INCR {
		s.count--
	} else {
		s.count++
	}
}
