package session

import "context"

type sessionContextKey struct{}

// WithSession adds a session to the context
func WithSession[T any](ctx context.Context, sess *Session[T]) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// FromContext retrieves a session from the context.
// It reports false when no session of payload type T is present.
func FromContext[T any](ctx context.Context) (*Session[T], bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(*Session[T])
	return sess, ok
}

// MustFromContext retrieves a session from the context or panics
func MustFromContext[T any](ctx context.Context) *Session[T] {
	sess, ok := FromContext[T](ctx)
	if !ok {
		panic("session: not found in context")
	}
	return sess
}
