package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHistoryFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "hist.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func captureStdoutStderr(t *testing.T) (stdout, stderr *os.File, readBack func() (string, string)) {
	t.Helper()
	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	readBack = func() (string, string) {
		outW.Close()
		errW.Close()
		outBuf := make([]byte, 64*1024)
		n, _ := outR.Read(outBuf)
		errBuf := make([]byte, 64*1024)
		m, _ := errR.Read(errBuf)
		return string(outBuf[:n]), string(errBuf[:m])
	}
	return outW, errW, readBack
}

func TestRun_SingleLinearizableStack(t *testing.T) {
	path := writeHistoryFile(t, "# stack\n0 0 1 push 1\n0 2 3 pop 1\n")
	out, errw, readBack := captureStdoutStderr(t)

	code := run([]string{path}, out, errw)
	stdout, _ := readBack()

	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n", stdout[len(stdout)-2:])
}

func TestRun_VerboseIncludesSizeAndTime(t *testing.T) {
	path := writeHistoryFile(t, "# stack\n0 0 1 push 1\n0 2 3 pop 1\n")
	out, errw, readBack := captureStdoutStderr(t)

	code := run([]string{"-v", path}, out, errw)
	stdout, _ := readBack()

	assert.Equal(t, 0, code)
	fields := strings.Fields(stdout)
	require.Len(t, fields, 3)
	assert.Equal(t, "2", fields[2])
}

func TestRun_MissingFileArgumentUsage(t *testing.T) {
	out, errw, readBack := captureStdoutStderr(t)
	code := run([]string{}, out, errw)
	_, stderrText := readBack()

	assert.Equal(t, 2, code)
	assert.Contains(t, stderrText, "usage")
}

func TestRun_HelpExitsZero(t *testing.T) {
	out, errw, readBack := captureStdoutStderr(t)
	code := run([]string{"--help"}, out, errw)
	stdout, _ := readBack()

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "usage")
}

func TestRun_UnknownObjectTypeFailsNonZero(t *testing.T) {
	path := writeHistoryFile(t, "# frobnicator\n0 0 1 push 1\n")
	out, errw, readBack := captureStdoutStderr(t)

	code := run([]string{path}, out, errw)
	_, stderrText := readBack()

	assert.Equal(t, 1, code)
	assert.Contains(t, stderrText, "unknown object type")
}
