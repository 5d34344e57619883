package annotate

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so renderers never
// build the attributes of a diagnostic nobody reads.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func silentLogger() *slog.Logger { return slog.New(nopHandler{}) }

// current is swapped atomically; hosts may install a logger while other
// goroutines render.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger())
}

// SetLogger installs l as the logger of annotate, recording and the
// playback backends. Nothing is logged until a logger is installed; nil
// silences logging again.
//
// Log levels used by annotate:
//   - [slog.LevelDebug]: lifecycle details (primitives drawn and removed,
//     viewport changes, playback)
//   - [slog.LevelWarn]: styling diagnostics (dropped or deprecated style
//     options, unresolved color dimensions, annotations that failed to draw)
//
// Example:
//
//	annotate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	current.Store(l)
}

// Logger returns the installed logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return current.Load()
}
