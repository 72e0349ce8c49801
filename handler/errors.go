package handler

import (
	"errors"
	"net/http"
)

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
)

// HTTPError carries an HTTP status code together with a short machine key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Short key (e.g., "not_found", "unauthorized")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest   = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden    = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound     = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrInternal     = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// errorResponse renders an HTTPError as a plain-text body.
type errorResponse struct {
	err HTTPError
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	http.Error(w, e.err.Key, e.err.Code)
	return nil
}

// Error creates a plain-text response from err. Errors that are not an
// HTTPError are rendered as 500 without exposing their message.
func Error(err error) Response {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return errorResponse{err: httpErr}
	}
	return errorResponse{err: ErrInternal}
}
