package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a record's context, e.g. the
// request ID. ok is false when the context does not carry the value.
type ContextExtractor func(ctx context.Context) (attr slog.Attr, ok bool)

// contextHandler appends extractor attributes to each record before passing
// it on. Records logged without a context are forwarded untouched.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func withExtractors(h slog.Handler, extractors []ContextExtractor) slog.Handler {
	if len(extractors) == 0 {
		return h
	}
	return contextHandler{Handler: h, extractors: extractors}
}

func (h contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx != nil {
		for _, extract := range h.extractors {
			if attr, ok := extract(ctx); ok {
				rec.AddAttrs(attr)
			}
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
