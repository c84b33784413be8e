// Package fptlin decides linearizability of a recorded concurrent execution
// history against the sequential specification of an abstract data type.
//
// 🚀 What is fptlin?
//
//	A small, dependency-light decision engine that answers one question:
//	given the invocations and responses a set of processes issued against a
//	shared object, does there exist a total order of those operations that
//	respects real-time precedence and matches the object's sequential spec?
//
// Supported objects: stack, queue, priority queue, set, semaphore, and a
// compare-and-set (read-modify-write) register.
//
// Under the hood, everything is organized under:
//
//	history/                    — Operation/History types, the line-oriented history-file reader
//	internal/event/              — invocation/response event stream (component A)
//	internal/bitpattern/         — per-layer (max/critical/pending) bit triples (component B)
//	internal/frontier/           — frontier lattice with equivalence-class compression (component C)
//	internal/aadt/                — generic apply/undo search engine (component D)
//	internal/aadt/{pqueue,set,semaphore,rmw,queue}/ — per-ADT simulators (component E)
//	internal/cfg/                 — grammar-parameterized matrix-closure engine (component F)
//	internal/stackgrammar/        — stack grammar + history preprocessing (component G)
//	internal/queuegrammar/        — FIFO queue decision procedure built on the AADT engine (component H)
//	cmd/fptlin/                   — command-line driver
//
// This package itself exposes only the thin dispatch facade, Check, used by
// the CLI. The stackgrammar/queuegrammar/aadt engines that decide an
// in-memory history.History live under internal/, so only code inside this
// module can call them directly.
package fptlin
