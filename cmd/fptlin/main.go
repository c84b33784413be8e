// Command fptlin decides linearizability of one or more recorded
// concurrent-execution history files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fptlin"
)

const usage = `usage: fptlin [-t] [-v] [-h] [--json] [--log-level=LEVEL] <history_file>...
       fptlin --help
`

// cliConfig holds every flag value after parsing, normalize()-d exactly
// once before use — the flow package's FlowOptions-with-normalize()
// pattern, carried over since CLI flags are fptlin's only configuration
// surface (no config file, no environment variables).
type cliConfig struct {
	printTime bool
	verbose   bool
	header    bool
	help      bool
	jsonOut   bool
	logLevel  string
	paths     []string
}

// normalize fills in defaults a flag.FlagSet leaves unset.
func (c *cliConfig) normalize() {
	if c.logLevel == "" {
		c.logLevel = "warn"
	}
}

type fileResult struct {
	path     string
	result   fptlin.Result
	duration time.Duration
	err      error
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("fptlin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	var cfg cliConfig
	fs.BoolVar(&cfg.printTime, "t", false, "print wall-clock duration of the decision procedure in seconds")
	fs.BoolVar(&cfg.verbose, "v", false, "print result, duration, and history size")
	fs.BoolVar(&cfg.header, "h", false, "prepend a header line naming printed columns")
	fs.BoolVar(&cfg.help, "help", false, "print usage and exit 0")
	fs.BoolVar(&cfg.jsonOut, "json", false, "emit one JSON object per file instead of a column line")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "structured-logging verbosity: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg.normalize()

	if cfg.help {
		fmt.Fprint(stdout, usage)
		return 0
	}

	cfg.paths = fs.Args()
	if len(cfg.paths) == 0 {
		fs.Usage()
		return 2
	}

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(stderr).Level(level).With().Timestamp().Logger()

	results := make([]fileResult, len(cfg.paths))
	var g errgroup.Group
	for i, path := range cfg.paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = decide(path)
			return nil
		})
	}
	_ = g.Wait() // each goroutine reports its own error in fileResult; nothing to propagate here

	exitCode := 0
	printHeaderOnce(stdout, cfg)
	for _, r := range results {
		if r.err != nil {
			logger.Error().Str("file", r.path).Err(r.err).Msg("decision failed")
			fmt.Fprintf(stderr, "fptlin: %s: %v\n", r.path, r.err)
			exitCode = 1
			continue
		}
		printResult(stdout, r, cfg)
	}

	return exitCode
}

// decide owns path's Simulator/Engine instance exclusively within this
// goroutine, preserving the single-threaded-per-run invariant even though
// multiple files are decided concurrently.
func decide(path string) fileResult {
	start := time.Now()
	res, err := fptlin.Check(path)
	return fileResult{path: path, result: res, duration: time.Since(start), err: err}
}

func printHeaderOnce(w *os.File, cfg cliConfig) {
	if !cfg.header || cfg.jsonOut {
		return
	}
	cols := []string{"result"}
	if cfg.verbose || cfg.printTime {
		cols = append(cols, "time_taken")
	}
	if cfg.verbose {
		cols = append(cols, "size")
	}
	fmt.Fprintln(w, strings.Join(cols, " "))
}

func printResult(w *os.File, r fileResult, cfg cliConfig) {
	resultBit := 0
	if r.result.Linearizable {
		resultBit = 1
	}
	seconds := r.duration.Seconds()

	if cfg.jsonOut {
		payload := map[string]any{"file": r.path, "result": resultBit == 1}
		if cfg.verbose || cfg.printTime {
			payload["time_taken"] = seconds
		}
		if cfg.verbose {
			payload["size"] = r.result.Size
		}
		enc, _ := json.Marshal(payload)
		fmt.Fprintln(w, string(enc))
		return
	}

	cols := []string{fmt.Sprintf("%d", resultBit)}
	if cfg.verbose || cfg.printTime {
		cols = append(cols, fmt.Sprintf("%f", seconds))
	}
	if cfg.verbose {
		cols = append(cols, fmt.Sprintf("%d", r.result.Size))
	}
	fmt.Fprintln(w, strings.Join(cols, " "))
}
