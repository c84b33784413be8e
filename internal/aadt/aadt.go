// Package aadt is the generic apply/undo (abstract admissible data type)
// search engine: given a Simulator capable of trying and rolling back one
// operation at a time, it decides whether a history is linearizable by
// depth-first search over the frontier lattice, without ever materializing
// the lattice as a graph (unlike the CFG engine in internal/cfg, this
// engine walks it implicitly via bit masks).
package aadt

import (
	"math/bits"

	"github.com/katalvlaran/fptlin/history"
	"github.com/katalvlaran/fptlin/internal/bitpattern"
	"github.com/katalvlaran/fptlin/internal/event"
	"github.com/katalvlaran/fptlin/internal/frontier"
)

// Simulator is the capability a concrete ADT (stack's stand-in for
// counterexamples aside, queue, priority queue, set, semaphore, rmw) must
// provide: Apply tries to perform op against the simulated sequential
// object and reports whether it is consistent with the object's current
// state, leaving the object mutated only on success; Undo reverses the
// most recent successful Apply of op.
type Simulator[V any] interface {
	Apply(op *history.Operation[V]) bool
	Undo(op *history.Operation[V])
}

// IsLinearizable decides whether h admits a linearization consistent with
// sim's sequential semantics, using the dfs/intraLayer/interLayer search
// from the original apply/undo engine.
func IsLinearizable[V any](h history.History[V], sim Simulator[V]) bool {
	events := event.Build(h)
	pattern := bitpattern.Build(events, nil)

	e := &engine[V]{
		events:  events,
		pattern: pattern,
		visited: make(map[frontier.Node]struct{}),
		sim:     sim,
	}
	return e.dfs(frontier.Node{Layer: 0, Bits: 0})
}

type engine[V any] struct {
	events  []event.Event[V]
	pattern []bitpattern.Pattern
	visited map[frontier.Node]struct{}
	sim     Simulator[V]

	ongoing [history.MaxProcesses]*history.Operation[V]
}

// dfs explores the frontier lattice node v. Each call either advances one
// layer or schedules one more operation, so recursion depth is bounded by
// the event count plus the operation count; the recursion uses the Go call
// stack, not an explicit heap-allocated stack.
func (e *engine[V]) dfs(v frontier.Node) bool {
	if v.Layer == len(e.events) {
		return true
	}
	if _, seen := e.visited[v]; seen {
		return false
	}
	e.visited[v] = struct{}{}

	pat := e.pattern[v.Layer]
	return e.intraLayer(v, pat.MaxBit) || e.interLayer(v, pat.CriticalBit, pat.PendingBit)
}

// intraLayer tries scheduling each not-yet-scheduled ongoing operation at
// the current layer, via the simulator's apply/undo pair.
func (e *engine[V]) intraLayer(v frontier.Node, maxBit uint32) bool {
	for x := maxBit; x != 0; x &= x - 1 {
		currBit := x & -x
		if currBit&v.Bits != 0 {
			continue
		}

		toAdd := e.ongoing[bits.TrailingZeros32(x)]
		next := frontier.Node{Layer: v.Layer, Bits: v.Bits | currBit}

		if e.sim.Apply(toAdd) {
			if e.dfs(next) {
				return true
			}
			e.sim.Undo(toAdd)
		}
	}

	return false
}

// interLayer advances to the next layer, installing a freshly-invoked
// operation into the ongoing table (pendingBit) or retiring a responded
// one (critBit), restoring the table entry on the way back up so sibling
// branches above this one still see it.
func (e *engine[V]) interLayer(v frontier.Node, critBit, pendingBit uint32) bool {
	if critBit&^v.Bits != 0 {
		return false
	}

	if pendingBit != 0 {
		e.ongoing[bits.TrailingZeros32(pendingBit)] = e.events[v.Layer].Op
	}

	good := e.dfs(frontier.Node{Layer: v.Layer + 1, Bits: v.Bits ^ critBit})

	if critBit != 0 {
		e.ongoing[bits.TrailingZeros32(critBit)] = e.events[v.Layer].Op
	}

	return good
}
