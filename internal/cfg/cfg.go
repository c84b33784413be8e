// Package cfg is the generic unambiguous-context-free-grammar closure
// engine: given a frontier graph and a Grammar describing how operations
// seed terminal-adjacent non-terminals and how adjacent spans combine, it
// decides membership via an O(V^3) transitive closure over sets of
// non-terminals, visiting matrix entries in BFS-distance order exactly as
// the source's stack_lin.h does (the bespoke, set-valued closure it uses,
// not the single-valued generic engine in unamb_cfg_lin.h — see
// SPEC_FULL.md §4.F and DESIGN.md for why).
package cfg

import (
	"sort"

	"github.com/katalvlaran/fptlin/history"
	"github.com/katalvlaran/fptlin/internal/frontier"
)

// NonTerminalSet is a set of grammar non-terminals, mirroring the source's
// std::unordered_set<non_terminal> matrix cell.
type NonTerminalSet[NT comparable] map[NT]struct{}

// Add inserts nt into the set.
func (s NonTerminalSet[NT]) Add(nt NT) { s[nt] = struct{}{} }

// Has reports whether nt is a member.
func (s NonTerminalSet[NT]) Has(nt NT) bool {
	_, ok := s[nt]
	return ok
}

// Union adds every member of other to s.
func (s NonTerminalSet[NT]) Union(other NonTerminalSet[NT]) {
	for nt := range other {
		s[nt] = struct{}{}
	}
}

// Grammar parameterizes the closure engine over one concrete grammar.
type Grammar[NT comparable, V any] interface {
	// Start is the non-terminal whose presence in the (source, dest) matrix
	// cell after closure means the history derives the grammar's start symbol.
	Start() NT

	// InitEntry maps a single frontier-graph edge's operation to the
	// non-terminal that seeds that edge's matrix cell.
	InitEntry(op *history.Operation[V]) NT

	// Combine derives the non-terminals reachable by concatenating a span
	// labeled with set a followed by a span labeled with set b.
	Combine(a, b NonTerminalSet[NT]) NonTerminalSet[NT]
}

// Engine runs the closure over any Grammar.
type Engine[NT comparable, V any] struct{}

// Decide reports whether the history underlying fg (which has numEvents
// events) derives the grammar's start symbol end to end.
func (Engine[NT, V]) Decide(fg *frontier.Graph[V], g Grammar[NT, V], numEvents int) bool {
	indices := assignIndices(fg)
	n := len(indices)
	if n == 0 {
		return false
	}

	dp := make([]NonTerminalSet[NT], n*n)
	for i := range dp {
		dp[i] = make(NonTerminalSet[NT])
	}
	adj := make([][]int, n)

	for a, edges := range fg.AdjList() {
		ai := indices[a]
		for _, e := range edges {
			bi := indices[e.To]
			adj[ai] = append(adj[ai], bi)
			dp[ai*n+bi].Add(g.InitEntry(e.Op))
		}
	}

	for _, pos := range entryOrder(adj) {
		a, b := pos.a, pos.b
		for c := 0; c < n; c++ {
			dp[a*n+b].Union(g.Combine(dp[a*n+c], dp[c*n+b]))
		}
	}

	dest := fg.FirstSameNode(frontier.Node{Layer: numEvents, Bits: 0})
	startIdx, hasStart := indices[frontier.Node{Layer: 0, Bits: 0}]
	destIdx, hasDest := indices[dest]
	if !hasStart || !hasDest {
		return false
	}

	return dp[startIdx*n+destIdx].Has(g.Start())
}

// assignIndices gives every node touched by fg's adjacency a dense index,
// exactly as the source's init_mats walks adj_list() to populate indices.
func assignIndices[V any](fg *frontier.Graph[V]) map[frontier.Node]int {
	indices := make(map[frontier.Node]int)

	add := func(n frontier.Node) {
		if _, ok := indices[n]; !ok {
			indices[n] = len(indices)
		}
	}

	for a, edges := range fg.AdjList() {
		add(a)
		for _, e := range edges {
			add(e.To)
		}
	}

	return indices
}

type entryPos struct {
	dist int
	a, b int
}

// entryOrder computes, for every node, its BFS distance to every other
// reachable node, then sorts ascending by distance — so calc_entry always
// has both sub-spans of any pair it processes already fully closed,
// exactly as the source's entry_order/calc_entry pairing relies on.
func entryOrder(adj [][]int) []entryPos {
	n := len(adj)
	var ret []entryPos

	for src := 0; src < n; src++ {
		dist := make([]int, n)
		for i := range dist {
			dist[i] = -1
		}
		dist[src] = 0
		queue := []int{src}

		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if dist[v] == -1 {
					dist[v] = dist[u] + 1
					queue = append(queue, v)
				}
			}
		}

		for i := 0; i < n; i++ {
			if dist[i] != -1 {
				ret = append(ret, entryPos{dist: dist[i], a: src, b: i})
			}
		}
	}

	sort.Slice(ret, func(i, j int) bool {
		if ret[i].dist != ret[j].dist {
			return ret[i].dist < ret[j].dist
		}
		if ret[i].a != ret[j].a {
			return ret[i].a < ret[j].a
		}
		return ret[i].b < ret[j].b
	})
	return ret
}
