package ocr

import (
	"context"
	"errors"
)

// ErrNoEngine is returned by extractors that have no OCR engine behind them.
var ErrNoEngine = errors.New("no OCR engine configured")

// ErrEmptyImage is returned when Extract receives no image data.
var ErrEmptyImage = errors.New("empty image")

// Extractor turns an image into text. Implementations wrap an OCR engine or
// service; none ships with this module.
type Extractor interface {
	Extract(ctx context.Context, img []byte, mimeType string) (string, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, img []byte, mimeType string) (string, error)

func (f ExtractorFunc) Extract(ctx context.Context, img []byte, mimeType string) (string, error) {
	return f(ctx, img, mimeType)
}

// Unavailable is the default Extractor. It always fails with ErrNoEngine.
type Unavailable struct{}

func (Unavailable) Extract(ctx context.Context, _ []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", ErrNoEngine
}

// Static returns the same text for every non-empty image. It stands in for a
// real engine in demos and tests.
type Static string

func (s Static) Extract(ctx context.Context, img []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(img) == 0 {
		return "", ErrEmptyImage
	}
	return string(s), nil
}
