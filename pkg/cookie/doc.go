// Package cookie provides a small HTTP cookie manager on top of net/http.
//
// A Manager carries default cookie attributes (Path, Domain, MaxAge, Secure,
// HttpOnly, SameSite) and applies them to every cookie it writes. Per-call
// Option values override the defaults without changing them.
//
//	cm := cookie.New(cookie.WithSecure(true))
//
//	cm.Set(w, "session_id", value)              // appends Set-Cookie
//	v, err := cm.Get(r, "session_id")           // first cookie with that name
//	cm.Delete(w, "session_id")                  // MaxAge=-1
//
// Managers are immutable; With derives one with different defaults:
//
//	dev := cm.With(cookie.WithSecure(false))
//
// Values are written as-is: the manager neither signs nor encrypts. Callers
// that put opaque tokens in cookies are responsible for their format.
package cookie
