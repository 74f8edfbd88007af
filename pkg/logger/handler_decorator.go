package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/cardcheck/pkg/card"
	"github.com/dmitrymomot/cardcheck/pkg/ocr"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler. It adds attributes pulled from the
// record's context and masks card numbers that slip into the message, string
// attributes or error values, so only card.Mask output reaches the output.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator creates a decorated handler. Nil extractors are dropped.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: clean}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, RedactCardNumbers(rec.Message), rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(redactAttr(a))
		return true
	})
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			out.AddAttrs(redactAttr(attr))
		}
	}
	return h.next.Handle(ctx, out)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &LogHandlerDecorator{next: h.next.WithAttrs(redacted), extractors: h.extractors}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithGroup(name), extractors: h.extractors}
}

// RedactCardNumbers replaces every Luhn-valid card number in s, grouped or
// not, with its card.Mask form. Other digit sequences are left alone.
func RedactCardNumbers(s string) string {
	for _, c := range ocr.FindCandidates(s) {
		if !card.Luhn(card.Normalize(c)) {
			continue
		}
		s = strings.ReplaceAll(s, c, card.Mask(c))
	}
	return s
}

func redactAttr(a slog.Attr) slog.Attr {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		a.Value = slog.StringValue(RedactCardNumbers(v.String()))
	case slog.KindGroup:
		group := v.Group()
		redacted := make([]slog.Attr, len(group))
		for i, g := range group {
			redacted[i] = redactAttr(g)
		}
		a.Value = slog.GroupValue(redacted...)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			if msg := err.Error(); RedactCardNumbers(msg) != msg {
				a.Value = slog.StringValue(RedactCardNumbers(msg))
			}
		}
	default:
		a.Value = v
	}
	return a
}
