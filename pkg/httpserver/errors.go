package httpserver

import "errors"

var (
	// ErrStart wraps listen and serve failures, and is returned when Serve
	// is called on a running server.
	ErrStart    = errors.New("httpserver.start_failed")
	ErrShutdown = errors.New("httpserver.shutdown_failed")
)
