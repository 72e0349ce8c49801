package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads plain cookies with a shared set of default attributes.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults are HttpOnly with no Path, Domain or
// SameSite attribute; opts override them for every cookie the manager writes.
func New(opts ...Option) *Manager {
	defaults := Options{
		HttpOnly: true,
	}

	return &Manager{
		defaults: applyOptions(defaults, opts),
	}
}

// With returns a Manager whose defaults are m's with opts applied.
// m is left unchanged.
func (m *Manager) With(opts ...Option) *Manager {
	return &Manager{defaults: applyOptions(m.defaults, opts)}
}

// Set appends a Set-Cookie header for name=value to w.
// Existing Set-Cookie headers on w are kept.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	http.SetCookie(w, m.build(name, value, opts))
}

func (m *Manager) build(name, value string, opts []Option) *http.Cookie {
	options := applyOptions(m.defaults, opts)

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
}

// Get returns the value of the first cookie called name.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete tells the client to drop the cookie called name.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	}
	http.SetCookie(w, cookie)
}
