// Package run orchestrates the decode-build-validate pipeline across one
// or more input paths: reading files, invoking the core library, logging
// structured progress, and aggregating counters across a concurrent
// multi-path check.
package run

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	saddle "github.com/radbuglet/saddle-go"
)

// Counters tracks aggregate progress across every path in a run, safe for
// concurrent updates from the goroutines a concurrent check spawns.
// Check updates FilesChecked and Failures; DirectivesFound is not updated
// by Check and stays zero.
type Counters struct {
	FilesChecked    atomic.Int64
	DirectivesFound atomic.Int64
	Failures        atomic.Int64
}

// Result is the outcome of checking a single path.
type Result struct {
	Path     string
	Graph    *saddle.Graph
	Err      error
	Duration time.Duration
}

// Options controls how Check runs the pipeline.
type Options struct {
	// Concurrent runs multiple paths through the pipeline in parallel via
	// an errgroup. Ignored when there is only one path.
	Concurrent bool
}

// Check runs the decode-build-validate pipeline over every path and
// returns one Result per path, in the same order paths were given, along
// with the counters accumulated across the whole run.
func Check(ctx context.Context, logger *zap.Logger, paths []string, opts Options) ([]Result, *Counters) {
	counters := &Counters{}
	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	results := make([]Result, len(paths))

	if !opts.Concurrent || len(paths) <= 1 {
		for i, p := range paths {
			results[i] = checkOne(logger, p, counters)
		}
		return results, counters
	}

	g, _ := errgroup.WithContext(ctx)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			results[i] = checkOne(logger, p, counters)
			return nil
		})
	}
	_ = g.Wait()

	return results, counters
}

func checkOne(logger *zap.Logger, path string, counters *Counters) Result {
	start := time.Now()
	logger = logger.With(zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		counters.Failures.Inc()
		logger.Error("failed to read input", zap.Error(err))
		return Result{Path: path, Err: saddle.WrapIoFailure(err, "failed to read %s", path), Duration: time.Since(start)}
	}

	g, err := saddle.Load(data)
	if err != nil {
		counters.Failures.Inc()
		logger.Error("failed to decode directives", zap.Error(err))
		return Result{Path: path, Err: err, Duration: time.Since(start)}
	}
	counters.FilesChecked.Inc()

	if err := g.Validate(); err != nil {
		counters.Failures.Inc()
		logger.Warn("validation failed")
		return Result{Path: path, Graph: g, Err: err, Duration: time.Since(start)}
	}

	logger.Info("validation succeeded", zap.Duration("duration", time.Since(start)))
	return Result{Path: path, Graph: g, Duration: time.Since(start)}
}

// NewLogger builds the *zap.Logger the CLI passes down to Check: a JSON
// encoder when jsonOutput is set (the CLI sets it for --format json), a
// console encoder otherwise.
func NewLogger(jsonOutput bool) (*zap.Logger, error) {
	if jsonOutput {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
