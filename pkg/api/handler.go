package api

import (
	"context"
	"log/slog"
	"net/http"
)

// handlerFunc handles a decoded request of type R and returns the value to
// encode as the 200 response body.
type handlerFunc[R any] func(ctx context.Context, req R) (any, error)

// wrap turns a typed handler into an http.HandlerFunc: it decodes the JSON
// body into R, runs h and renders either the result or the error.
func wrap[R any](log *slog.Logger, h handlerFunc[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, log, err)
			return
		}

		resp, err := h(r.Context(), req)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
