package session

import (
	"github.com/dmitrymomot/sessionkit/handler"
)

// Extract returns an extractor that loads or creates the request's session
// and hands it to set. The handler is responsible for Commit and for
// attaching the cookie, usually through Session.Respond.
//
// A token generation failure aborts the request with 500.
func Extract[C handler.Context, R any, T any](store *Store[T], defaults func() T, set func(req *R, sess *Session[T])) handler.Extractor[C, R] {
	return func(ctx C, req *R) handler.Response {
		sess, err := store.GetOrCreate(ctx, CookieLookup(ctx.Request()), defaults)
		if err != nil {
			return handler.Error(handler.ErrInternal)
		}
		set(req, sess)
		return nil
	}
}

// ExtractToken returns an extractor that only decodes the session cookie.
// ok is false when the cookie is missing or malformed; the request is never
// rejected.
func ExtractToken[C handler.Context, R any](set func(req *R, token Token, ok bool)) handler.Extractor[C, R] {
	return func(ctx C, req *R) handler.Response {
		token, ok := TokenFromRequest(ctx.Request())
		set(req, token, ok)
		return nil
	}
}
