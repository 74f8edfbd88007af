package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/cardcheck/pkg/card"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// CardNumber records a card number under "card_number". The value is always
// masked with card.Mask; full numbers never reach the log.
func CardNumber(number string) slog.Attr {
	return slog.String("card_number", card.Mask(number))
}

// Brand records a card brand under "brand".
func Brand(b card.Brand) slog.Attr {
	return slog.String("brand", b.String())
}

// Valid records a validity flag under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// CardResult groups the masked number, brand and validity of r under "card".
func CardResult(r card.Result) slog.Attr {
	return Group("card", CardNumber(r.Number), Brand(r.Brand), Valid(r.Valid))
}

// ImagePath records an image location under "image_path".
func ImagePath(path string) slog.Attr {
	return slog.String("image_path", path)
}

// Count records a count under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
