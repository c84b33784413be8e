// Package bitpattern computes, for each position in a sorted event stream,
// the (max, critical, pending) bit triple the AADT search engine indexes
// its ongoing-operation table with.
package bitpattern

import (
	"github.com/katalvlaran/fptlin/history"
	"github.com/katalvlaran/fptlin/internal/event"
)

// MethodFilter reports whether an operation's method should contribute its
// process bit to the running mask. A nil filter allows every method,
// mirroring the source's variadic Method... template filter defaulting to
// "no restriction" when instantiated with zero methods.
type MethodFilter func(history.Method) bool

// Pattern is the per-layer bit triple: MaxBit is the mask of processes with
// an operation in flight entering this layer, CriticalBit is the single
// process bit a response event retires, PendingBit is the single process
// bit an invocation event introduces.
type Pattern struct {
	MaxBit      uint32
	CriticalBit uint32
	PendingBit  uint32
}

// Build walks a sorted event stream once and returns one Pattern per event,
// in event order.
func Build[V any](events []event.Event[V], filter MethodFilter) []Pattern {
	patterns := make([]Pattern, 0, len(events))

	var maxBit uint32
	for _, e := range events {
		ignore := filter != nil && !filter(e.Op.Method)
		var opBit uint32
		if !ignore {
			opBit = 1 << e.Op.Proc
		}

		if e.Kind == event.KindInvocation {
			patterns = append(patterns, Pattern{MaxBit: maxBit, PendingBit: opBit})
			maxBit |= opBit
		} else {
			patterns = append(patterns, Pattern{MaxBit: maxBit, CriticalBit: opBit})
			maxBit ^= opBit
		}
	}

	return patterns
}
