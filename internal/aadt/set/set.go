// Package set is the AADT simulator for a set of int64 keys: INSERT and
// REMOVE report whether the membership they expected (history.Pair.Second,
// the present-flag) held, and CONTAINS is a pure observation.
package set

import "github.com/katalvlaran/fptlin/history"

// Simulator is a set of present keys.
type Simulator struct {
	present map[int64]struct{}
}

// New returns an empty set simulator.
func New() *Simulator {
	return &Simulator{present: make(map[int64]struct{})}
}

func (s *Simulator) Apply(o *history.Operation[history.Pair]) bool {
	key, want := o.Value.First, o.Value.Flag()
	_, has := s.present[key]

	switch o.Method {
	case history.INSERT:
		if want {
			if has {
				return false
			}
			s.present[key] = struct{}{}
			return true
		}
		return has

	case history.CONTAINS:
		return has == want

	case history.REMOVE:
		if want {
			if !has {
				return false
			}
			delete(s.present, key)
			return true
		}
		return !has
	}
	return false
}

// Undo reverses the membership change INSERT/REMOVE made when want was
// true; a failed or observation-only call never mutated state.
func (s *Simulator) Undo(o *history.Operation[history.Pair]) {
	key, want := o.Value.First, o.Value.Flag()
	if !want {
		return
	}

	switch o.Method {
	case history.INSERT:
		delete(s.present, key)
	case history.REMOVE:
		s.present[key] = struct{}{}
	}
}
