package protoplot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so Render pays
// nothing for its debug and warn calls until a logger is installed.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is shared by Layout, Plan, Render, describe and the
// recording backends.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes protoplot diagnostics to l; nil silences them again.
//
// Records emitted:
//   - [slog.LevelDebug]: grid size and trailing columns from Layout,
//     canvas size and tick count from Plan, description format from
//     describe.Load, finished images from the png backend
//   - [slog.LevelWarn]: duplicate field labels (their SVG group ids
//     collide) and labels wider than their field
//
// The protoplot command installs a text handler on stderr at the level
// given by --log-level:
//
//	protoplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelWarn,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
