// Package event turns a history.History into the sorted invocation/response
// stream that every downstream component (bit-pattern builder, frontier
// graph) walks in a single forward pass.
package event

import (
	"sort"

	"github.com/katalvlaran/fptlin/history"
)

// Kind distinguishes an operation's invocation from its response. It is
// bool-backed, in the same small-enum-with-Stringer style as dfs.VertexState,
// and orders KindInvocation before KindResponse so that two events at the
// same timestamp break ties invocation-first.
type Kind bool

const (
	KindInvocation Kind = false
	KindResponse   Kind = true
)

func (k Kind) String() string {
	if k == KindResponse {
		return "response"
	}
	return "invocation"
}

// Event is one endpoint (start or end) of an Operation's time interval.
type Event[V any] struct {
	Time uint64
	Kind Kind
	Op   *history.Operation[V]
}

// Build produces the two events per operation — (StartTime, invocation) and
// (EndTime, response) — sorted by (Time, Kind), invocation before response
// on ties.
func Build[V any](h history.History[V]) []Event[V] {
	events := make([]Event[V], 0, 2*len(h))
	for i := range h {
		op := &h[i]
		events = append(events,
			Event[V]{Time: op.StartTime, Kind: KindInvocation, Op: op},
			Event[V]{Time: op.EndTime, Kind: KindResponse, Op: op},
		)
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].Kind == KindInvocation && events[j].Kind == KindResponse
	})

	return events
}
