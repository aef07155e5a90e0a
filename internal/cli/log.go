// SPDX-License-Identifier: MIT

// Package cli implements the kmatch command-line driver.
//
// The driver seeds example affinity tables (fixed, random or from CSV), runs
// the matching solver, and prints the assignment together with timing. It is
// built on cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - solve: solve one table and print the column→row assignment
//   - bench: solve many random tables concurrently and report throughput
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in the command context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level, with
// timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one operation and logs its elapsed time on done.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// elapsed returns the time since the progress was created.
func (p *progress) elapsed() time.Duration { return time.Since(p.start) }

// done logs msg with the elapsed time and returns that duration.
func (p *progress) done(msg string, keyvals ...any) time.Duration {
	d := p.elapsed()
	p.logger.Info(msg, append(keyvals, "elapsed", d)...)
	return d
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
