package basicauth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// Option configures Credentials and the account sets frozen from them.
type Option func(*options)

type options struct {
	cost     int
	logger   *slog.Logger
	recorder Recorder
}

func defaultOptions() options {
	return options{
		cost:     bcrypt.DefaultCost,
		logger:   logger.Discard(),
		recorder: nopRecorder{},
	}
}

// WithCost sets the bcrypt cost used by Insert. Values outside bcrypt's
// accepted range are ignored.
func WithCost(cost int) Option {
	return func(o *options) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			o.cost = cost
		}
	}
}

// WithLogger sets the logger for authentication events.
// Passwords and hashes are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets the metrics sink for authentication attempts.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// Recorder receives the outcome of every credential check.
type Recorder interface {
	AuthAttempt(ok bool)
}

type nopRecorder struct{}

func (nopRecorder) AuthAttempt(bool) {}
