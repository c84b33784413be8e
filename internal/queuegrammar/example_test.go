package queuegrammar_test

import (
	"fmt"

	"github.com/katalvlaran/fptlin/history"
	"github.com/katalvlaran/fptlin/internal/queuegrammar"
)

// ExampleIsLinearizable shows two sequential enqueues followed by two
// dequeues observing FIFO order.
func ExampleIsLinearizable() {
	h := history.History[int64]{
		{ID: 1, Proc: 0, Method: history.ENQ, Value: 1, StartTime: 0, EndTime: 1},
		{ID: 2, Proc: 0, Method: history.ENQ, Value: 2, StartTime: 2, EndTime: 3},
		{ID: 3, Proc: 0, Method: history.DEQ, Value: 1, StartTime: 4, EndTime: 5},
		{ID: 4, Proc: 0, Method: history.DEQ, Value: 2, StartTime: 6, EndTime: 7},
	}

	fmt.Println(queuegrammar.IsLinearizable(h, history.EmptySentinel))

	// Output:
	// true
}
