package fptlin

import (
	"fmt"

	"github.com/katalvlaran/fptlin/history"
	"github.com/katalvlaran/fptlin/internal/aadt"
	"github.com/katalvlaran/fptlin/internal/aadt/pqueue"
	"github.com/katalvlaran/fptlin/internal/aadt/rmw"
	"github.com/katalvlaran/fptlin/internal/aadt/semaphore"
	"github.com/katalvlaran/fptlin/internal/aadt/set"
	"github.com/katalvlaran/fptlin/internal/queuegrammar"
	"github.com/katalvlaran/fptlin/internal/stackgrammar"
)

// Result is the outcome of deciding one history file.
type Result struct {
	Linearizable bool
	Size         int
}

// Check reads the history file at path, dispatches on its "# <type>"
// header to the matching decision engine, and reports whether the
// recorded execution is linearizable.
func Check(path string) (Result, error) {
	objType, err := history.PeekObjectType(path)
	if err != nil {
		return Result{}, err
	}

	switch objType {
	case history.ObjStack:
		_, h, err := history.ReadScalar(path)
		if err != nil {
			return Result{}, err
		}
		return Result{Linearizable: stackgrammar.IsLinearizable(h, history.EmptySentinel), Size: len(h)}, nil

	case history.ObjQueue:
		_, h, err := history.ReadScalar(path)
		if err != nil {
			return Result{}, err
		}
		return Result{Linearizable: queuegrammar.IsLinearizable(h, history.EmptySentinel), Size: len(h)}, nil

	case history.ObjPriorityQueue:
		_, h, err := history.ReadScalar(path)
		if err != nil {
			return Result{}, err
		}
		sim := pqueue.New(history.EmptySentinel)
		return Result{Linearizable: aadt.IsLinearizable[int64](h, sim), Size: len(h)}, nil

	case history.ObjSet:
		_, h, err := history.ReadPair(path)
		if err != nil {
			return Result{}, err
		}
		return Result{Linearizable: aadt.IsLinearizable[history.Pair](h, set.New()), Size: len(h)}, nil

	case history.ObjRMW:
		_, h, err := history.ReadPair(path)
		if err != nil {
			return Result{}, err
		}
		return Result{Linearizable: aadt.IsLinearizable[history.Pair](h, rmw.New()), Size: len(h)}, nil

	case history.ObjSemaphore:
		_, h, err := history.ReadBool(path)
		if err != nil {
			return Result{}, err
		}
		return Result{Linearizable: aadt.IsLinearizable[bool](h, semaphore.New()), Size: len(h)}, nil

	default:
		return Result{}, fmt.Errorf("fptlin: %q: %w", objType, history.ErrUnknownObjectType)
	}
}
