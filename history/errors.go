package history

import "errors"

// Sentinel errors for history parsing. Callers branch on these with
// errors.Is; context is attached with fmt.Errorf("%w ...") at call sites,
// never by formatting the sentinel itself (see SPEC_FULL.md, §7 policy).
var (
	// ErrUnknownMethod indicates a method token with no matching Method spelling.
	ErrUnknownMethod = errors.New("history: unknown method")

	// ErrUnknownObjectType indicates a "# <type>" header naming an unsupported object.
	ErrUnknownObjectType = errors.New("history: unknown object type")

	// ErrProcessOutOfRange indicates a proc index >= MaxProcesses.
	ErrProcessOutOfRange = errors.New("history: process index out of range")

	// ErrMalformedLine indicates a history line with too few whitespace-separated fields.
	ErrMalformedLine = errors.New("history: malformed line")

	// ErrMissingObjectType indicates a history file with no "# <type>" header line.
	ErrMissingObjectType = errors.New("history: missing object-type header")
)
