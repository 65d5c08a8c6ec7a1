// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package eventlog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/playstats/internal/logging"
	"github.com/tomtom215/playstats/internal/metrics"
	"github.com/tomtom215/playstats/internal/playback"
)

// Loaded is one event file folded into a snapshot.
type Loaded struct {
	Source   string
	Log      SessionLog
	Snapshot playback.Snapshot
}

// Skipped is an event file left out of a non-strict load.
type Skipped struct {
	Source string
	Err    error
}

// Result holds the outcome of LoadFiles in input order.
type Result struct {
	Loaded  []Loaded
	Skipped []Skipped
}

// Snapshots returns the snapshots of all loaded files.
func (r *Result) Snapshots() []playback.Snapshot {
	out := make([]playback.Snapshot, len(r.Loaded))
	for i, l := range r.Loaded {
		out[i] = l.Snapshot
	}
	return out
}

// Loader reads event files concurrently and builds one snapshot per file.
type Loader struct {
	workers int
	strict  bool
	logger  *zerolog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithWorkers bounds the number of files processed at once. n <= 0 means NumCPU.
func WithWorkers(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithStrict makes LoadFiles fail on the first bad file instead of skipping it.
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}

// WithLogger overrides the logger taken from the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) {
		l.logger = &logger
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) log(ctx context.Context) zerolog.Logger {
	if l.logger != nil {
		ctx = logging.ContextWithLogger(ctx, *l.logger)
	}
	return logging.WithComponent(ctx, "eventlog")
}

// LoadFile reads, decodes and builds a single event file.
func (l *Loader) LoadFile(ctx context.Context, path string) (Loaded, error) {
	if err := ctx.Err(); err != nil {
		return Loaded{}, err
	}
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		metrics.RecordFileDecoded(metrics.ResultUnreadable, time.Since(start))
		return Loaded{}, fmt.Errorf("read %s: %w", path, err)
	}

	sessionLog, err := Decode(data)
	if err != nil {
		metrics.RecordFileDecoded(metrics.ResultInvalid, time.Since(start))
		return Loaded{}, fmt.Errorf("decode %s: %w", path, err)
	}

	snapshot, err := playback.Build(sessionLog.Session)
	if err != nil {
		metrics.RecordSessionRejected(err)
		metrics.RecordFileDecoded(metrics.ResultInvalid, time.Since(start))
		return Loaded{}, fmt.Errorf("build session %s from %s: %w", sessionLog.ID, path, err)
	}

	metrics.RecordSessionBuilt(len(sessionLog.Session.Events))
	metrics.RecordFileDecoded(metrics.ResultOK, time.Since(start))

	logger := l.log(ctx)
	logger.Debug().
		Str("file", path).
		Str("session_id", sessionLog.ID).
		Int("events", len(sessionLog.Session.Events)).
		Dur("took", time.Since(start)).
		Msg("Loaded session")

	return Loaded{Source: path, Log: sessionLog, Snapshot: snapshot}, nil
}

// LoadFiles loads paths with bounded parallelism. Results keep input order.
// In strict mode the first failure cancels the remaining work and is returned;
// otherwise failed files are logged and reported in Result.Skipped.
// Cancellation of ctx always aborts the load.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) (*Result, error) {
	type outcome struct {
		loaded Loaded
		err    error
	}
	outcomes := make([]outcome, len(paths))
	logger := l.log(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for i, path := range paths {
		g.Go(func() error {
			loaded, err := l.LoadFile(gctx, path)
			if err == nil {
				outcomes[i].loaded = loaded
				return nil
			}
			if l.strict || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			logger.Warn().Err(err).Str("file", path).Msg("Skipping event file")
			outcomes[i].err = err
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Loaded: make([]Loaded, 0, len(paths))}
	for i, o := range outcomes {
		if o.err != nil {
			result.Skipped = append(result.Skipped, Skipped{Source: paths[i], Err: o.err})
			continue
		}
		result.Loaded = append(result.Loaded, o.loaded)
	}

	logger.Info().
		Int("files", len(paths)).
		Int("loaded", len(result.Loaded)).
		Int("skipped", len(result.Skipped)).
		Msg("Event files loaded")

	return result, nil
}
