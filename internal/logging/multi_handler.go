package logging

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/dotcli/internal/errors"
)

// MultiHandler fans a record out to several handlers, e.g. the terminal
// handler and the --log-file JSON sink.
type MultiHandler []slog.Handler

// NewMultiHandler returns a handler dispatching to all of hs.
func NewMultiHandler(hs ...slog.Handler) MultiHandler {
	return MultiHandler(hs)
}

// Enabled is true when any underlying handler is enabled.
func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes r to every enabled handler and reports the first failure.
func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range m {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = errors.Wrap(err, "log handler")
		}
	}
	return first
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(MultiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	out := make(MultiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}
	return out
}
