package session

import "github.com/dmitrymomot/sessionkit/pkg/cookie"

// Config holds session configuration
type Config struct {
	// SecureCookies sets the Secure attribute on session cookies.
	// Disable only when the service cannot be reached over HTTPS.
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"true"`

	// Cookie carries the shared cookie attributes (COOKIE_PATH,
	// COOKIE_DOMAIN, COOKIE_SAME_SITE, COOKIE_SECURE). The session cookie is
	// Secure only when both COOKIE_SECURE and SESSION_SECURE_COOKIES allow it.
	Cookie cookie.Config
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		SecureCookies: true,
		Cookie:        cookie.DefaultConfig(),
	}
}

// NewFromConfig creates a Store from the provided Config. opts are applied
// last and may replace the cookie manager built from cfg.
func NewFromConfig[T any](cfg Config, opts ...Option) *Store[T] {
	secure := cfg.SecureCookies && cfg.Cookie.Secure
	cookies := cookie.NewFromConfig(cfg.Cookie, cookie.WithSecure(secure))

	configOpts := make([]Option, 0, len(opts)+1)
	configOpts = append(configOpts, WithCookies(cookies))
	configOpts = append(configOpts, opts...)

	return NewStore[T](configOpts...)
}
