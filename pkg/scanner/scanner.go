package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/cardcheck/pkg/card"
	"github.com/dmitrymomot/cardcheck/pkg/imagesource"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/ocr"
)

const (
	// PlaceholderMessage is reported when no OCR engine is configured.
	PlaceholderMessage = "To implement actual OCR functionality, plug an ocr.Extractor backed by an OCR library or a cloud OCR service into the scanner."
	// PlaceholderNote explains how the placeholder relates to validation.
	PlaceholderNote = "card.Validate can be used once the card number has been extracted from the image."
)

// Report is the outcome of scanning one image.
type Report struct {
	Message   string        `json:"message" yaml:"message"`
	ImagePath string        `json:"imagePath" yaml:"imagePath"`
	Note      string        `json:"note,omitempty" yaml:"note,omitempty"`
	Card      *card.Result  `json:"card,omitempty" yaml:"card,omitempty"`
	Results   []card.Result `json:"results,omitempty" yaml:"results,omitempty"`
}

// Scanner reads card images, extracts their text and validates every card
// number candidate it finds.
type Scanner struct {
	source    imagesource.Source
	extractor ocr.Extractor
	log       *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExtractor sets the OCR extractor. Defaults to ocr.Unavailable.
func WithExtractor(ex ocr.Extractor) Option {
	return func(s *Scanner) {
		if ex != nil {
			s.extractor = ex
		}
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Scanner reading images from src.
func New(src imagesource.Source, opts ...Option) *Scanner {
	s := &Scanner{
		source:    src,
		extractor: ocr.Unavailable{},
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("scanner"))
	return s
}

// ProcessFromImage loads the image at path and looks for a card number in it.
//
// Without an OCR engine the returned Report carries only the placeholder
// message and note. Otherwise Results holds one entry per candidate found in
// the extracted text and Card points at the first valid one, if any.
// Errors come from the image source or the extractor; a missing or invalid
// card number is not an error.
func (s *Scanner) ProcessFromImage(ctx context.Context, path string) (*Report, error) {
	start := time.Now()
	s.log.InfoContext(ctx, "processing card image", logger.ImagePath(path))

	img, err := s.source.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}

	text, err := s.extractor.Extract(ctx, img.Data, img.MIMEType)
	if errors.Is(err, ocr.ErrNoEngine) {
		s.log.DebugContext(ctx, "no OCR engine configured", logger.ImagePath(path))
		return &Report{
			Message:   PlaceholderMessage,
			ImagePath: path,
			Note:      PlaceholderNote,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("extract text from %s: %w", path, err)
	}

	candidates := ocr.FindCandidates(text)
	report := &Report{
		ImagePath: path,
		Results:   make([]card.Result, 0, len(candidates)),
	}

	for _, c := range candidates {
		res := card.Validate(c)
		report.Results = append(report.Results, res)
		if res.Valid && report.Card == nil {
			found := res
			report.Card = &found
		}
	}

	switch {
	case report.Card != nil:
		report.Message = fmt.Sprintf("found a valid %s card number", report.Card.Brand)
		s.log.InfoContext(ctx, "card number found",
			logger.ImagePath(path),
			logger.CardResult(*report.Card),
			logger.Count(len(candidates)),
			logger.Duration(time.Since(start)),
		)
	case len(candidates) > 0:
		report.Message = "no valid card number found"
		s.log.InfoContext(ctx, "only invalid card numbers found",
			logger.ImagePath(path),
			logger.Count(len(candidates)),
			logger.Duration(time.Since(start)),
		)
	default:
		report.Message = "no card number found"
		s.log.InfoContext(ctx, "no card number candidates",
			logger.ImagePath(path),
			logger.Duration(time.Since(start)),
		)
	}

	return report, nil
}
