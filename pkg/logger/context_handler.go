package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a record's context. It reports
// false when the context carries nothing to log.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler is a slog.Handler that appends extractor attributes to each
// record before passing it on.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next with the non-nil extractors.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	h := &ContextHandler{next: next}
	for _, ex := range extractors {
		if ex != nil {
			h.extractors = append(h.extractors, ex)
		}
	}
	return h
}

// Enabled defers to the wrapped handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle adds the extracted attributes to rec and passes it on.
func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	var extra []slog.Attr
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok && !attr.Equal(slog.Attr{}) {
			extra = append(extra, attr)
		}
	}
	if len(extra) > 0 {
		rec.AddAttrs(extra...)
	}
	return h.next.Handle(ctx, rec)
}

// WithAttrs returns a handler that keeps the same extractors.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(h.next.WithAttrs(attrs))
}

// WithGroup returns a handler that keeps the same extractors.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return h.derive(h.next.WithGroup(name))
}

func (h *ContextHandler) derive(next slog.Handler) *ContextHandler {
	return &ContextHandler{next: next, extractors: h.extractors}
}
