// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs the logger used for solver diagnostics. By default the
// solver is silent. Pass nil to restore the silent default.
//
// Records are emitted at slog.LevelDebug only:
//   - degenerate leading coefficient (falling through to a lower degree),
//   - negative resolvent radicand in the real quartic (no real roots),
//   - near-zero intermediates in the complex quartic (fallback branch).
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current solver logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
