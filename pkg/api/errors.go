package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is a backend rejection (any non-2xx status). Detail carries
// the backend's message when the body had one.
type Error struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api: backend returned %d", e.Status)
}

// decodeError extracts a message from an error response body. The
// backend is inconsistent about the field name, so both "detail" and
// "error" are accepted; anything unparseable degrades to status-only.
func decodeError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Detail string `json:"detail"`
		Err    string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Detail != "" {
			apiErr.Detail = payload.Detail
		} else {
			apiErr.Detail = payload.Err
		}
	}
	return apiErr
}

// IsUnauthorized reports whether err is a 401-class backend rejection,
// the only signal that the bearer token is no longer valid.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// ErrorDetail returns the backend message from err, or "" when err is
// not a backend rejection or carried no message.
func ErrorDetail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
