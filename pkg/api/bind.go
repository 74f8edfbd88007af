package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 64 << 10

// decodeJSON strictly decodes the request body into v. A missing
// Content-Type is treated as JSON; any other media type is rejected.
func decodeJSON(r *http.Request, v any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return HTTPError{
				Code: http.StatusUnsupportedMediaType,
				Key:  "unsupported_media_type",
				Err:  fmt.Errorf("%w: %s", ErrUnsupportedMediaType, ct),
			}
		}
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return badRequest("malformed_body", fmt.Errorf("%w: %v", ErrMalformedBody, err))
	}
	if len(body) > maxBodyBytes {
		return HTTPError{
			Code: http.StatusRequestEntityTooLarge,
			Key:  "body_too_large",
			Err:  fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxBodyBytes),
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return badRequest("malformed_body", fmt.Errorf("%w: empty body", ErrMalformedBody))
		}
		return badRequest("malformed_body", fmt.Errorf("%w: %v", ErrMalformedBody, err))
	}
	if dec.More() {
		return badRequest("malformed_body", fmt.Errorf("%w: trailing data after JSON value", ErrMalformedBody))
	}
	return nil
}
