package api

import (
	"errors"
	"net/http"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMalformedBody        = errors.New("malformed request body")
	ErrBodyTooLarge         = errors.New("request body too large")
)

// HTTPError carries the status code and a stable error key for the client.
type HTTPError struct {
	Code int
	Key  string
	Err  error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e HTTPError) Unwrap() error { return e.Err }

func badRequest(key string, err error) HTTPError {
	return HTTPError{Code: http.StatusBadRequest, Key: key, Err: err}
}
