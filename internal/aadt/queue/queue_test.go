package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fptlin/history"
)

const empty = int64(1<<63 - 1)

func op(method history.Method, v int64) *history.Operation[int64] {
	return &history.Operation[int64]{Method: method, Value: v}
}

func TestSimulator_EnqThenDeqInOrder(t *testing.T) {
	s := New(empty)
	assert.True(t, s.Apply(op(history.ENQ, 1)))
	assert.True(t, s.Apply(op(history.ENQ, 2)))
	assert.True(t, s.Apply(op(history.PEEK, 1)))
	assert.True(t, s.Apply(op(history.DEQ, 1)))
	assert.True(t, s.Apply(op(history.DEQ, 2)))
}

func TestSimulator_DeqWrongValueFails(t *testing.T) {
	s := New(empty)
	s.Apply(op(history.ENQ, 1))
	assert.False(t, s.Apply(op(history.DEQ, 2)))
}

func TestSimulator_DeqEmptyObservesSentinel(t *testing.T) {
	s := New(empty)
	assert.True(t, s.Apply(op(history.DEQ, empty)))
	assert.True(t, s.Apply(op(history.PEEK, empty)))
}

func TestSimulator_UndoEnqPopsBack(t *testing.T) {
	s := New(empty)
	enqOp := op(history.ENQ, 1)
	s.Apply(enqOp)
	s.Undo(enqOp)
	assert.True(t, s.Apply(op(history.PEEK, empty)))
}

func TestSimulator_UndoDeqRestoresFront(t *testing.T) {
	s := New(empty)
	s.Apply(op(history.ENQ, 1))
	deqOp := op(history.DEQ, 1)
	s.Apply(deqOp)
	s.Undo(deqOp)
	assert.True(t, s.Apply(op(history.PEEK, 1)))
}
