package cookie

import "errors"

// ErrCookieNotFound is returned by Get when the request has no cookie with
// the given name.
var ErrCookieNotFound = errors.New("cookie.not_found")
