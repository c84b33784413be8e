// Package stackgrammar decides linearizability of a stack history: PUSH
// forms the grammar's "push" terminal class, PEEK a non-mutating
// observation class, and POP closes a derivation back to the sentence
// start symbol, using the unambiguous, set-valued closure engine in
// internal/cfg.
package stackgrammar

import (
	"github.com/katalvlaran/fptlin/history"
	"github.com/katalvlaran/fptlin/internal/cfg"
	"github.com/katalvlaran/fptlin/internal/event"
	"github.com/katalvlaran/fptlin/internal/frontier"
)

// Symbol is the grammar's non-terminal family: S closes a balanced
// push/pop span back to the start symbol, Push and Peek tag a single
// still-open PUSH or PEEK value.
type Symbol uint8

const (
	SymS Symbol = iota
	SymPush
	SymPeek
)

// NonTerminal pairs a Symbol with the value it carries. Epsilon is the
// placeholder value used when a NonTerminal's value is irrelevant (the
// fully-reduced {S, Epsilon} entry) — a reserved value distinct from any
// real stack payload and from the empty sentinel, so that the synthetic
// bottom-of-stack PUSH/POP pair can reduce like any other value.
type NonTerminal struct {
	Sym   Symbol
	Value int64
}

// Epsilon is the value component of the fully-reduced start non-terminal.
const Epsilon int64 = -1 << 63 // math.MinInt64

func isStackMethod(m history.Method) bool {
	return m == history.PUSH || m == history.PEEK || m == history.POP
}

// Preprocess rewrites h into the form the grammar actually derives over:
// a synthetic PUSH(emptySentinel) bottom-of-stack marker is prepended,
// any original operation observing emptySentinel is reclassified to PEEK
// (an "observed empty" response never demands a phantom push/pop of its
// own), and every non-PEEK operation (including the synthetic bottom
// marker) gets a synthetic mirror of the opposite method appended at the
// time-reversed position. The mirroring is unconditional, following the
// original C++ make_match's behavior rather than a more conditional
// phrasing — see DESIGN.md.
func Preprocess(h history.History[int64], emptySentinel int64) history.History[int64] {
	if len(h) == 0 {
		return h
	}

	out := make(history.History[int64], len(h))
	copy(out, h)

	nextID := out[len(out)-1].ID + 1
	for i := range out {
		out[i].StartTime += 2
		out[i].EndTime += 2
		if out[i].Value == emptySentinel {
			out[i].Method = history.PEEK
		}
	}
	out = append(out, history.Operation[int64]{
		ID: nextID, Proc: out[len(out)-1].Proc, Method: history.PUSH,
		Value: emptySentinel, StartTime: 0, EndTime: 1,
	})
	nextID++

	var lastTime uint64
	for _, op := range out {
		if end := op.EndTime + 1; end > lastTime {
			lastTime = end
		}
	}
	lastTime <<= 1

	n := len(out)
	for i := 0; i < n; i++ {
		op := out[i]
		if op.Method == history.PEEK {
			continue
		}
		mirror := history.POP
		if op.Method == history.POP {
			mirror = history.PUSH
		}
		out = append(out, history.Operation[int64]{
			ID: nextID, Proc: op.Proc, Method: mirror, Value: op.Value,
			StartTime: lastTime - op.EndTime, EndTime: lastTime - op.StartTime,
		})
		nextID++
	}

	return out
}

type grammar struct{}

func (grammar) Start() NonTerminal { return NonTerminal{Sym: SymS, Value: Epsilon} }

func (grammar) InitEntry(op *history.Operation[int64]) NonTerminal {
	switch op.Method {
	case history.PUSH:
		return NonTerminal{Sym: SymPush, Value: op.Value}
	case history.PEEK:
		return NonTerminal{Sym: SymPeek, Value: op.Value}
	default: // history.POP
		return NonTerminal{Sym: SymS, Value: op.Value}
	}
}

// Combine is the grammar's production rule: an "S, v" span on the right
// only contributes if the left span holds a matching PUSH (consuming it:
// the result reduces all the way to {S, Epsilon}), a matching PEEK
// (non-consuming: the result stays {S, v}), or is itself already fully
// reduced (the unmatched {S, v} just carries through).
func (grammar) Combine(a, b cfg.NonTerminalSet[NonTerminal]) cfg.NonTerminalSet[NonTerminal] {
	out := make(cfg.NonTerminalSet[NonTerminal])

	for x := range b {
		if x.Sym != SymS || x.Value == Epsilon {
			continue
		}

		switch {
		case a.Has(NonTerminal{Sym: SymPush, Value: x.Value}):
			out.Add(NonTerminal{Sym: SymS, Value: Epsilon})
		case a.Has(NonTerminal{Sym: SymPeek, Value: x.Value}):
			out.Add(NonTerminal{Sym: SymS, Value: x.Value})
		case a.Has(NonTerminal{Sym: SymS, Value: Epsilon}):
			out.Add(x)
		}
	}

	return out
}

// Grammar returns the cfg.Grammar this package implements.
func Grammar() cfg.Grammar[NonTerminal, int64] { return grammar{} }

// IsLinearizable decides whether h, a history of PUSH/PEEK/POP operations,
// admits a linearization consistent with stack order.
func IsLinearizable(h history.History[int64], emptySentinel int64) bool {
	if len(h) == 0 {
		return true
	}

	prepared := Preprocess(h, emptySentinel)
	events := event.Build(prepared)
	fg := frontier.Build(events, isStackMethod)

	var engine cfg.Engine[NonTerminal, int64]
	return engine.Decide(fg, Grammar(), len(events))
}
