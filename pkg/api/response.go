package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cardcheck/pkg/imagesource"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/validator"
)

// StatusClientClosedRequest answers requests the client abandoned before the
// image source replied. The client is gone, so nobody reads it.
const StatusClientClosedRequest = 499

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code and error key. Server-side failures
// are logged at error level, canceled requests at debug level.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, body := classifyError(err)
	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Error(err),
	}
	switch {
	case status == StatusClientClosedRequest:
		log.DebugContext(r.Context(), "request canceled by client", attrs...)
	case status >= http.StatusInternalServerError:
		log.ErrorContext(r.Context(), "request failed", attrs...)
	}
	writeJSON(w, status, body)
}

func classifyError(err error) (int, ErrorResponse) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "validation_error", Details: verrs.ToMap()}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, ErrorResponse{Error: httpErr.Key, Details: detail(httpErr.Err)}
	}

	switch {
	case errors.Is(err, imagesource.ErrFileNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "image_not_found"}
	case errors.Is(err, imagesource.ErrInvalidPath), errors.Is(err, imagesource.ErrIsDirectory):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid_image_path"}
	case errors.Is(err, imagesource.ErrNotImage):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "not_an_image"}
	case errors.Is(err, imagesource.ErrFileTooLarge):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "image_too_large"}
	case errors.Is(err, imagesource.ErrAccessDenied):
		return http.StatusForbidden, ErrorResponse{Error: "access_denied"}
	case errors.Is(err, imagesource.ErrRequestTimeout), errors.Is(err, imagesource.ErrOperationTimeout):
		return http.StatusGatewayTimeout, ErrorResponse{Error: "timeout"}
	case errors.Is(err, imagesource.ErrOperationCanceled), errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, ErrorResponse{Error: "request_canceled"}
	case errors.Is(err, imagesource.ErrServiceUnavailable), errors.Is(err, imagesource.ErrBucketNotFound):
		return http.StatusServiceUnavailable, ErrorResponse{Error: "service_unavailable"}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: "internal_error"}
}

func detail(err error) map[string][]string {
	if err == nil {
		return nil
	}
	return map[string][]string{"body": {err.Error()}}
}
