package basicauth

import (
	"bytes"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"
)

const basicPrefix = "Basic "

// Authorization is the parsed Authorization request header. The zero value
// means no usable credentials were supplied.
type Authorization struct {
	user     string
	password string
	basic    bool
}

// BasicAuthorization returns an Authorization carrying user and password.
func BasicAuthorization(user, password string) Authorization {
	return Authorization{user: user, password: password, basic: true}
}

// Basic returns the supplied credentials. ok is false for a missing or
// malformed header.
func (a Authorization) Basic() (user, password string, ok bool) {
	return a.user, a.password, a.basic
}

// LogValue keeps the password out of logs.
func (a Authorization) LogValue() slog.Value {
	if !a.basic {
		return slog.StringValue("unknown")
	}
	return slog.GroupValue(slog.String("scheme", "basic"), slog.String("username", a.user))
}

// ParseAuthorization reads Basic credentials from h. Every failure yields the
// zero Authorization:
//   - the header is missing or present more than once
//   - the scheme is not Basic (compared case-insensitively)
//   - the payload is not base64 (URL-safe or standard alphabet)
//   - username or password is not valid UTF-8
//
// A payload without a colon is a username with an empty password.
func ParseAuthorization(h http.Header) Authorization {
	values := h.Values("Authorization")
	if len(values) != 1 {
		return Authorization{}
	}

	header := values[0]
	if len(header) < len(basicPrefix) || !strings.EqualFold(header[:len(basicPrefix)], basicPrefix) {
		return Authorization{}
	}

	payload, ok := decodePayload(header[len(basicPrefix):])
	if !ok {
		return Authorization{}
	}

	user, password := payload, []byte(nil)
	if i := bytes.IndexByte(payload, ':'); i >= 0 {
		user, password = payload[:i], payload[i+1:]
	}
	if !utf8.Valid(user) || !utf8.Valid(password) {
		return Authorization{}
	}

	return BasicAuthorization(string(user), string(password))
}

func decodePayload(s string) ([]byte, bool) {
	for _, enc := range []*base64.Encoding{base64.URLEncoding, base64.StdEncoding} {
		if raw, err := enc.DecodeString(s); err == nil {
			return raw, true
		}
	}
	return nil, false
}
