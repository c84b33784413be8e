package pqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fptlin/history"
)

const empty = int64(1<<63 - 1)

func op(method history.Method, v int64) *history.Operation[int64] {
	return &history.Operation[int64]{Method: method, Value: v}
}

func TestSimulator_InsertThenPollMax(t *testing.T) {
	s := New(empty)
	assert.True(t, s.Apply(op(history.INSERT, 3)))
	assert.True(t, s.Apply(op(history.INSERT, 7)))
	assert.True(t, s.Apply(op(history.INSERT, 5)))

	assert.True(t, s.Apply(op(history.PEEK, 7)))
	assert.True(t, s.Apply(op(history.POLL, 7)))
	assert.True(t, s.Apply(op(history.POLL, 5)))
}

func TestSimulator_PollWrongValueFails(t *testing.T) {
	s := New(empty)
	s.Apply(op(history.INSERT, 3))
	assert.False(t, s.Apply(op(history.POLL, 9)))
}

func TestSimulator_PollEmptyObservesSentinel(t *testing.T) {
	s := New(empty)
	assert.True(t, s.Apply(op(history.POLL, empty)))
	assert.True(t, s.Apply(op(history.PEEK, empty)))
}

func TestSimulator_UndoInsertRemovesValue(t *testing.T) {
	s := New(empty)
	insertOp := op(history.INSERT, 4)
	s.Apply(insertOp)
	s.Undo(insertOp)
	assert.False(t, s.Apply(op(history.PEEK, 4)))
	assert.True(t, s.Apply(op(history.PEEK, empty)))
}

func TestSimulator_UndoPollReinsertsValue(t *testing.T) {
	s := New(empty)
	s.Apply(op(history.INSERT, 4))
	pollOp := op(history.POLL, 4)
	s.Apply(pollOp)
	s.Undo(pollOp)
	assert.True(t, s.Apply(op(history.PEEK, 4)))
}

func TestSimulator_UndoEmptyPollIsNoop(t *testing.T) {
	s := New(empty)
	pollOp := op(history.POLL, empty)
	s.Apply(pollOp)
	s.Undo(pollOp)
	assert.True(t, s.Apply(op(history.PEEK, empty)))
}
