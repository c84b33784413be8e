// Package queuegrammar decides linearizability of a FIFO queue history.
// Despite the package name (kept for symmetry with stackgrammar, and
// because it is the component the rest of fptlin dispatches to for queue
// histories), it is not grammar-based: it is a thin wrapper over the
// AADT search engine. See DESIGN.md's "Open Question: queue grammar" entry
// for why a from-scratch CFG grammar was not attempted.
package queuegrammar

import (
	"github.com/katalvlaran/fptlin/history"
	"github.com/katalvlaran/fptlin/internal/aadt"
	"github.com/katalvlaran/fptlin/internal/aadt/queue"
)

// IsLinearizable decides whether h, a history of ENQ/DEQ/PEEK operations,
// admits a linearization consistent with FIFO order. emptySentinel is the
// reserved value a DEQ/PEEK against an empty queue is expected to report.
func IsLinearizable(h history.History[int64], emptySentinel int64) bool {
	return aadt.IsLinearizable[int64](h, queue.New(emptySentinel))
}
