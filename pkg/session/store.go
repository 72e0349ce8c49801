package session

import (
	"context"
	crand "crypto/rand"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// Cloner is implemented by payloads that need a deep copy. The store clones
// values on the way in and on the way out so callers never share memory with
// a stored entry. Types without Clone are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

func clone[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Lookup resolves the token a request claims to hold, if any.
type Lookup func(ctx context.Context) (Token, bool)

// CookieLookup returns a Lookup that reads the session cookie from r.
func CookieLookup(r *http.Request) Lookup {
	return func(context.Context) (Token, bool) {
		return TokenFromRequest(r)
	}
}

// Store is a concurrent in-memory map from token to session payload.
// Entries live until Invalidate is called; there is no expiry.
type Store[T any] struct {
	mu      sync.RWMutex
	rng     io.Reader
	entries map[Token]T

	cookies  *cookie.Manager
	logger   *slog.Logger
	recorder Recorder
}

// NewStore creates an empty store. By default tokens come from a ChaCha8
// generator owned by the store and seeded once from crypto/rand.
func NewStore[T any](opts ...Option) *Store[T] {
	o := options{
		logger:   logger.Discard(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.rng == nil {
		var seed [32]byte
		_, _ = crand.Read(seed[:]) // never fails since Go 1.24
		o.rng = rand.NewChaCha8(seed)
	}

	cookies := o.cookies
	if cookies == nil {
		cookies = cookie.New(cookie.WithSecure(true))
	}
	if o.insecure {
		cookies = cookies.With(cookie.WithSecure(false))
	}

	return &Store[T]{
		rng:      o.rng,
		entries:  make(map[Token]T),
		cookies:  cookies,
		logger:   o.logger.With(logger.Component("session")),
		recorder: o.recorder,
	}
}

// Create stores data under a freshly drawn token and returns the token.
// The draw, the collision check and the insert all happen under the
// exclusive lock, so concurrent callers never receive the same token.
func (s *Store[T]) Create(data T) (Token, error) {
	value := clone(data)

	s.mu.Lock()
	token, collisions, err := s.drawLocked()
	if err == nil {
		s.entries[token] = value
	}
	s.mu.Unlock()

	for range collisions {
		s.recorder.TokenCollision()
	}
	if err != nil {
		s.logger.Error("failed to generate session token", logger.Error(err))
		return Token{}, errors.Join(ErrTokenGeneration, err)
	}
	if collisions > 0 {
		s.logger.Warn("session token collision", logger.RetryCount(collisions))
	}
	s.recorder.SessionCreated()

	return token, nil
}

// drawLocked reads tokens until one is free. Callers must hold s.mu for writing.
func (s *Store[T]) drawLocked() (Token, int, error) {
	collisions := 0
	for {
		var t Token
		if _, err := io.ReadFull(s.rng, t[:]); err != nil {
			return Token{}, collisions, err
		}
		if _, taken := s.entries[t]; !taken {
			return t, collisions, nil
		}
		collisions++
	}
}

// Get returns a copy of the payload stored under token, or ErrUnauthorized.
func (s *Store[T]) Get(token Token) (T, error) {
	s.mu.RLock()
	data, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		var zero T
		return zero, ErrUnauthorized
	}
	return clone(data), nil
}

// Invalidate removes the entry for token and returns its last payload.
// The token can never name a live session again unless it is redrawn.
func (s *Store[T]) Invalidate(token Token) (T, bool) {
	s.mu.Lock()
	data, ok := s.entries[token]
	if ok {
		delete(s.entries, token)
	}
	s.mu.Unlock()

	if ok {
		s.recorder.SessionInvalidated()
		s.logger.Debug("session invalidated")
	}
	return data, ok
}

// Update replaces the payload of a live session.
func (s *Store[T]) Update(token Token, data T) error {
	value := clone(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[token]; !ok {
		return ErrUnauthorized
	}
	s.entries[token] = value
	return nil
}

// Commit writes the session snapshot back to the store.
func (s *Store[T]) Commit(sess *Session[T]) error {
	if sess == nil {
		return ErrUnauthorized
	}
	return s.Update(sess.token, sess.data)
}

// GetOrCreate resolves lookup, then returns the live session it names. When
// lookup yields nothing, or the token is not live, a new session holding
// defaults() is created. A nil defaults means the zero value of T.
//
// lookup and defaults run before any lock is taken.
func (s *Store[T]) GetOrCreate(ctx context.Context, lookup Lookup, defaults func() T) (*Session[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if lookup != nil {
		if token, ok := lookup(ctx); ok {
			if data, err := s.Get(token); err == nil {
				return &Session[T]{token: token, data: data, cookies: s.cookies}, nil
			}
		}
	}

	var data T
	if defaults != nil {
		data = defaults()
	}

	token, err := s.Create(data)
	if err != nil {
		return nil, err
	}
	return &Session[T]{token: token, isNew: true, data: data, cookies: s.cookies}, nil
}

// Load is GetOrCreate with the session cookie of r as the lookup.
func (s *Store[T]) Load(r *http.Request, defaults func() T) (*Session[T], error) {
	return s.GetOrCreate(r.Context(), CookieLookup(r), defaults)
}

// ClearCookie tells the client to drop its session cookie. It is written
// with the store's cookie attributes so it replaces the cookie Attach set.
func (s *Store[T]) ClearCookie(w http.ResponseWriter) {
	s.cookies.Delete(w, CookieName)
}

// Len returns the number of live sessions.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
