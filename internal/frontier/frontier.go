// Package frontier builds the frontier lattice over a sorted event stream:
// one layer per event, one node per reachable scheduled-subset bitmask,
// compressed into equivalence classes via an append-only representative
// map (depth never exceeds one, so lookups are O(1) without a textbook
// union-find).
package frontier

import (
	"math/bits"

	"github.com/katalvlaran/fptlin/history"
	"github.com/katalvlaran/fptlin/internal/bitpattern"
	"github.com/katalvlaran/fptlin/internal/event"
)

// Node is a position in the frontier lattice: the event index (Layer) and
// the bitmask of processes whose operation has been scheduled (Bits). It is
// a plain comparable struct, so it is usable directly as a Go map key with
// no custom hash function, unlike the original's bit_cast-based node_hash.
type Node struct {
	Layer int
	Bits  uint32
}

// Edge is one transition out of a frontier node: scheduling Op leads to To.
type Edge[V any] struct {
	To Node
	Op *history.Operation[V]
}

// Graph is the built frontier lattice: adjacency plus the equivalence-class
// representative maps needed to answer FirstSameNode/LastSameNode in O(1).
type Graph[V any] struct {
	parent         map[Node]Node
	lastAddedChild map[Node]Node
	adjList        map[Node][]Edge[V]
}

// Build constructs the frontier graph from a sorted event stream, joining
// nodes in increments of layer exactly as the source's frontier_graph::build
// does. filter restricts which methods contribute a process bit — a nil
// filter admits every method.
func Build[V any](events []event.Event[V], filter bitpattern.MethodFilter) *Graph[V] {
	g := &Graph[V]{
		parent:         make(map[Node]Node),
		lastAddedChild: make(map[Node]Node),
		adjList:        make(map[Node][]Edge[V]),
	}

	var ongoing [history.MaxProcesses]*history.Operation[V]
	var maxBit uint32

	for layer, e := range events {
		ignore := filter != nil && !filter(e.Op.Method)
		var opBit uint32
		if !ignore {
			opBit = 1 << e.Op.Proc
		}
		var critBit uint32
		if e.Kind == event.KindResponse {
			critBit = opBit
		}

		for sub := maxBit; ; sub = (sub - 1) & maxBit {
			curr := Node{Layer: layer, Bits: sub}
			first := g.repOrSelf(curr)

			if critBit == 0 || (critBit&sub) != 0 {
				last := Node{Layer: layer + 1, Bits: sub ^ critBit}
				g.parent[last] = first
				g.lastAddedChild[first] = last
			}

			for x := maxBit &^ sub; x != 0; x &= x - 1 {
				currBit := x & -x
				toAdd := ongoing[bits.TrailingZeros32(x)]
				next := Node{Layer: layer, Bits: sub | currBit}
				g.adjList[first] = append(g.adjList[first], Edge[V]{To: g.repOrSelf(next), Op: toAdd})
			}

			if sub == 0 {
				break
			}
		}

		if ignore {
			continue
		}

		if e.Kind == event.KindInvocation {
			maxBit |= opBit
			ongoing[e.Op.Proc] = e.Op
		} else {
			maxBit ^= opBit
		}
	}

	return g
}

// repOrSelf is the Go analogue of unordered_map::try_emplace(node,
// node).first->second: insert node as its own representative if absent,
// and return whatever representative is on file.
func (g *Graph[V]) repOrSelf(n Node) Node {
	if rep, ok := g.parent[n]; ok {
		return rep
	}
	g.parent[n] = n
	return n
}

// Next returns the outgoing edges from node.
func (g *Graph[V]) Next(n Node) []Edge[V] {
	return g.adjList[n]
}

// FirstSameNode returns the equivalence-class representative of node. A
// node never joined during Build maps to the zero Node, mirroring
// unordered_map::operator[]'s default-construct-on-miss behavior.
func (g *Graph[V]) FirstSameNode(n Node) Node {
	return g.parent[n]
}

// LastSameNode returns the most recently added child of the equivalence
// class rooted at first, or first itself if the class has no child yet.
func (g *Graph[V]) LastSameNode(first Node) Node {
	if last, ok := g.lastAddedChild[first]; ok {
		return last
	}
	return first
}

// AdjList exposes the full adjacency map, for callers that need to assign
// dense indices over every node reached during Build (e.g. the CFG closure
// engine's matrix setup).
func (g *Graph[V]) AdjList() map[Node][]Edge[V] {
	return g.adjList
}
