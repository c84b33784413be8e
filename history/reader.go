package history

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PeekObjectType reads only the file's "# <type>" header line, without
// parsing any operation rows — the fptlin facade uses it to pick which of
// ReadScalar/ReadPair/ReadBool to call before committing to a value shape.
func PeekObjectType(path string) (ObjectType, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("history: open %q: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			return ObjectType(strings.TrimSpace(line[1:])), nil
		}
		break
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("history: read %q: %w", path, err)
	}
	return "", fmt.Errorf("history: %q: %w", path, ErrMissingObjectType)
}

// rawOp is a parsed line before its value tokens are interpreted as a
// scalar, a Pair, or a bool — the interpretation depends on the object
// type named by the file's header, which scan() also returns.
type rawOp struct {
	proc   uint32
	start  uint64
	end    uint64
	method Method
	tokens []string
}

// scan performs the single-pass, line-oriented parse shared by
// ReadScalar/ReadPair/ReadBool: strip comments, read the "#" header (a file
// without one is rejected with ErrMissingObjectType), split each remaining
// line into proc/startTime/endTime/method/value...
func scan(path string) (ObjectType, []rawOp, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("history: open %q: %w", path, err)
	}
	defer f.Close()

	var objType ObjectType
	var haveType bool
	var raws []rawOp

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if !haveType && len(raws) == 0 {
				objType = ObjectType(strings.TrimSpace(line[1:]))
				haveType = true
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			return "", nil, fmt.Errorf("history: line %q: %w", line, ErrMalformedLine)
		}

		proc64, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return "", nil, fmt.Errorf("history: proc %q: %w", fields[0], err)
		}
		if proc64 >= MaxProcesses {
			return "", nil, fmt.Errorf("history: proc %d: %w", proc64, ErrProcessOutOfRange)
		}
		start, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("history: startTime %q: %w", fields[1], err)
		}
		end, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("history: endTime %q: %w", fields[2], err)
		}
		method, err := ParseMethod(fields[3])
		if err != nil {
			return "", nil, err
		}

		raws = append(raws, rawOp{
			proc:   uint32(proc64),
			start:  start,
			end:    end,
			method: method,
			tokens: fields[4:],
		})
	}
	if err := sc.Err(); err != nil {
		return "", nil, fmt.Errorf("history: read %q: %w", path, err)
	}
	if !haveType {
		return "", nil, fmt.Errorf("history: %q: %w", path, ErrMissingObjectType)
	}

	return objType, raws, nil
}

// ReadScalar reads a history whose value payload is a single integer
// (stack, queue, priority queue).
func ReadScalar(path string) (ObjectType, History[int64], error) {
	objType, raws, err := scan(path)
	if err != nil {
		return "", nil, err
	}

	h := make(History[int64], len(raws))
	for i, r := range raws {
		if len(r.tokens) < 1 {
			return "", nil, fmt.Errorf("history: operation %d: %w", i+1, ErrMalformedLine)
		}
		v, err := strconv.ParseInt(r.tokens[0], 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("history: value %q: %w", r.tokens[0], err)
		}
		h[i] = Operation[int64]{ID: uint64(i + 1), Proc: r.proc, Method: r.method, Value: v, StartTime: r.start, EndTime: r.end}
	}
	return objType, h, nil
}

// ReadPair reads a history whose value payload is a (first, second) pair
// (rmw, set).
func ReadPair(path string) (ObjectType, History[Pair], error) {
	objType, raws, err := scan(path)
	if err != nil {
		return "", nil, err
	}

	h := make(History[Pair], len(raws))
	for i, r := range raws {
		if len(r.tokens) < 2 {
			return "", nil, fmt.Errorf("history: operation %d: %w", i+1, ErrMalformedLine)
		}
		a, err := strconv.ParseInt(r.tokens[0], 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("history: value %q: %w", r.tokens[0], err)
		}
		b, err := strconv.ParseInt(r.tokens[1], 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("history: value %q: %w", r.tokens[1], err)
		}
		h[i] = Operation[Pair]{ID: uint64(i + 1), Proc: r.proc, Method: r.method, Value: Pair{First: a, Second: b}, StartTime: r.start, EndTime: r.end}
	}
	return objType, h, nil
}

// ReadBool reads a history whose value payload is a boolean outcome
// (semaphore).
func ReadBool(path string) (ObjectType, History[bool], error) {
	objType, raws, err := scan(path)
	if err != nil {
		return "", nil, err
	}

	h := make(History[bool], len(raws))
	for i, r := range raws {
		if len(r.tokens) < 1 {
			return "", nil, fmt.Errorf("history: operation %d: %w", i+1, ErrMalformedLine)
		}
		v, err := strconv.ParseBool(r.tokens[0])
		if err != nil {
			return "", nil, fmt.Errorf("history: value %q: %w", r.tokens[0], err)
		}
		h[i] = Operation[bool]{ID: uint64(i + 1), Proc: r.proc, Method: r.method, Value: v, StartTime: r.start, EndTime: r.end}
	}
	return objType, h, nil
}
