package frontier_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/fptlin/history"
	"github.com/katalvlaran/fptlin/internal/event"
	"github.com/katalvlaran/fptlin/internal/frontier"
)

// benchConcurrency is the number of concurrent processes to benchmark.
var benchConcurrency = []int{4, 8, 16}

// BenchmarkBuild_FullyConcurrent measures frontier graph construction over
// a fully-concurrent batch of pushes, where every process's operation
// overlaps every other's and the lattice's interior is maximally exercised.
func BenchmarkBuild_FullyConcurrent(b *testing.B) {
	b.ReportAllocs()
	for _, procs := range benchConcurrency {
		procs := procs
		b.Run(fmt.Sprintf("procs=%d", procs), func(b *testing.B) {
			h := make(history.History[int64], procs)
			for i := 0; i < procs; i++ {
				h[i] = history.Operation[int64]{
					ID: uint64(i + 1), Proc: uint32(i), Method: history.PUSH,
					Value: int64(i), StartTime: 0, EndTime: 1,
				}
			}
			events := event.Build(h)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				frontier.Build(events, nil)
			}
		})
	}
}
