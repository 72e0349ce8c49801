package session

import (
	"net/http"

	"github.com/dmitrymomot/sessionkit/handler"
	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Session is a request-scoped snapshot of one store entry.
// Changes made through Data stay local until passed to Store.Commit.
type Session[T any] struct {
	token   Token
	isNew   bool
	data    T
	cookies *cookie.Manager
}

// Token returns the session token.
func (s *Session[T]) Token() Token { return s.token }

// IsNew reports whether the session was created during this request.
func (s *Session[T]) IsNew() bool { return s.isNew }

// Data returns the snapshot payload for reading and in-place modification.
func (s *Session[T]) Data() *T { return &s.data }

// Attach appends the session cookie to w when the session is new.
// A client that already holds the cookie gets no header.
// It must be called before w.WriteHeader.
func (s *Session[T]) Attach(w http.ResponseWriter) {
	if !s.isNew {
		return
	}
	s.cookieManager().Set(w, CookieName, EncodeToken(s.token))
}

// Respond wraps resp so the session cookie is attached before resp writes
// its status line.
func (s *Session[T]) Respond(resp handler.Response) handler.Response {
	if resp == nil {
		return nil
	}
	return handler.ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		s.Attach(w)
		return resp.Render(w, r)
	})
}

func (s *Session[T]) cookieManager() *cookie.Manager {
	if s.cookies == nil {
		return secureCookies
	}
	return s.cookies
}

var secureCookies = cookie.New(cookie.WithSecure(true))
