// Package cli implements the commentbox command-line interface.
//
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library. Rendered boxes go to stdout; logs and status
// lines go to stderr so output can be piped or redirected cleanly.
//
// # Commands
//
// The main commands are:
//   - render: Draw a comment box around text from arguments, a file, or stdin
//   - styles: List the registered glyph styles, optionally with previews
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and the library's observability hooks are
// routed to the same logger.
package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time, rounded to the
// microsecond since boxes render fast.
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Microsecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks forwards render and registry events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRender(lines, width int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "err", err)
		return
	}
	h.logger.Debug("rendered box", "lines", lines, "width", width, "took", duration)
}

func (h logHooks) OnStyleRegistered(name string, isDefault bool) {
	h.logger.Debug("registered style", "name", name, "default", isDefault)
}

func (h logHooks) OnDefaultsChanged(keys []string) {
	h.logger.Debug("defaults changed", "keys", strings.Join(keys, ","))
}
