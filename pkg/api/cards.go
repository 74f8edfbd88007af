package api

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/cardcheck/pkg/card"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/validator"
)

const maxImagePathLen = 1024

type ValidateRequest struct {
	Number string `json:"number"`
}

type BatchRequest struct {
	Numbers []string `json:"numbers"`
}

type BatchResponse struct {
	Results []card.Result `json:"results"`
}

type ScanRequest struct {
	ImagePath string `json:"image_path"`
}

// validate never fails on the number itself: an invalid card is a 200 with
// valid=false.
func (s *Service) validate(ctx context.Context, req ValidateRequest) (any, error) {
	res := card.Validate(req.Number)
	s.log.DebugContext(ctx, "card validated", logger.CardResult(res))
	return res, nil
}

func (s *Service) validateBatch(ctx context.Context, req BatchRequest) (any, error) {
	if err := validator.Apply(
		validator.NotEmptySlice("numbers", req.Numbers),
		validator.MaxItems("numbers", req.Numbers, s.maxBatch),
	); err != nil {
		return nil, err
	}

	resp := BatchResponse{Results: make([]card.Result, 0, len(req.Numbers))}
	valid := 0
	for _, n := range req.Numbers {
		res := card.Validate(n)
		if res.Valid {
			valid++
		}
		resp.Results = append(resp.Results, res)
	}
	s.log.DebugContext(ctx, "batch validated", logger.Count(len(req.Numbers)), slog.Int("valid", valid))
	return resp, nil
}

func (s *Service) scan(ctx context.Context, req ScanRequest) (any, error) {
	if err := validator.Apply(
		validator.Required("image_path", req.ImagePath),
		validator.MaxLen("image_path", req.ImagePath, maxImagePathLen),
		validator.RelativePath("image_path", req.ImagePath),
	); err != nil {
		return nil, err
	}

	report, err := s.scanner.ProcessFromImage(ctx, req.ImagePath)
	if err != nil {
		return nil, err
	}
	return report, nil
}
