package basicauth

import (
	"github.com/dmitrymomot/sessionkit/handler"
)

// Require returns an extractor that admits only requests v verifies.
// Other requests receive v's 401 challenge and the handler is not called.
func Require[C handler.Context, R any](v Verifier, set func(req *R, u User)) handler.Extractor[C, R] {
	return func(ctx C, req *R) handler.Response {
		u, ok := v.Verify(ctx.Request())
		if !ok {
			return v.Authenticate()
		}
		set(req, u)
		return nil
	}
}

// Optional returns an extractor that never rejects. The handler receives
// the user, or ErrUnauthorized when verification failed, and decides what
// to do.
func Optional[C handler.Context, R any](v Verifier, set func(req *R, u User, err error)) handler.Extractor[C, R] {
	return func(ctx C, req *R) handler.Response {
		u, ok := v.Verify(ctx.Request())
		if !ok {
			set(req, User{}, ErrUnauthorized)
			return nil
		}
		set(req, u, nil)
		return nil
	}
}

// ExtractAuthorization returns an extractor that hands the parsed, unverified
// Authorization header to set.
func ExtractAuthorization[C handler.Context, R any](set func(req *R, auth Authorization)) handler.Extractor[C, R] {
	return func(ctx C, req *R) handler.Response {
		set(req, ParseAuthorization(ctx.Request().Header))
		return nil
	}
}
