package session

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	rng      io.Reader
	cookies  *cookie.Manager
	insecure bool
	logger   *slog.Logger
	recorder Recorder
}

// WithRand replaces the store's random source. The store reads from it only
// while holding its exclusive lock, so r does not need to be safe for
// concurrent use. Intended for tests that need a fixed token sequence.
func WithRand(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithCookies sets the manager that writes and clears session cookies,
// carrying attributes such as Path, Domain and SameSite. The default manager
// writes HttpOnly; Secure cookies with no other attributes.
func WithCookies(m *cookie.Manager) Option {
	return func(o *options) {
		if m != nil {
			o.cookies = m
		}
	}
}

// WithInsecureCookies drops the Secure attribute from session cookies so a
// browser will send them over plain HTTP. Use only for local development.
func WithInsecureCookies() Option {
	return func(o *options) {
		o.insecure = true
	}
}

// WithLogger sets the logger for store events. Tokens are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets the metrics sink for store events.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// Recorder receives store events. Calls are made after the store lock is
// released.
type Recorder interface {
	SessionCreated()
	SessionInvalidated()
	TokenCollision()
}

type nopRecorder struct{}

func (nopRecorder) SessionCreated()     {}
func (nopRecorder) SessionInvalidated() {}
func (nopRecorder) TokenCollision()     {}
