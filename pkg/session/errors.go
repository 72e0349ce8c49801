package session

import "errors"

var (
	// ErrUnauthorized indicates the token does not name a live session.
	// Never-issued and invalidated tokens are indistinguishable.
	ErrUnauthorized = errors.New("session.unauthorized")

	// ErrTokenGeneration indicates the random source failed while drawing a token
	ErrTokenGeneration = errors.New("session.token_generation_failed")
)
