// Package rmw is the AADT simulator for a compare-and-set register: a
// READ_MODIFY_WRITE operation carries (expected, new) and succeeds iff the
// register currently holds expected, after which it holds new.
package rmw

import "github.com/katalvlaran/fptlin/history"

// Simulator is a single int64 register, initialized to zero.
type Simulator struct {
	reg int64
}

// New returns a register simulator starting at zero.
func New() *Simulator {
	return &Simulator{}
}

func (s *Simulator) Apply(o *history.Operation[history.Pair]) bool {
	expected, next := o.Value.First, o.Value.Second
	if expected != s.reg {
		return false
	}
	s.reg = next
	return true
}

func (s *Simulator) Undo(o *history.Operation[history.Pair]) {
	s.reg = o.Value.First
}
