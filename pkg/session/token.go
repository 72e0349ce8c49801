package session

import (
	"encoding/base64"
	"net/http"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// CookieName is the cookie that carries the session token.
const CookieName = "session_id"

// TokenSize is the number of random bytes in a token.
const TokenSize = 16

// Token is an opaque 128-bit session identifier.
type Token [TokenSize]byte

// String returns the cookie form of the token.
func (t Token) String() string {
	return EncodeToken(t)
}

// EncodeToken returns the padded URL-safe base64 form of t.
func EncodeToken(t Token) string {
	return base64.URLEncoding.EncodeToString(t[:])
}

// DecodeToken parses the cookie form of a token. Anything that is not padded
// URL-safe base64 of exactly TokenSize bytes is rejected.
func DecodeToken(s string) (Token, bool) {
	var t Token
	if base64.URLEncoding.EncodedLen(TokenSize) != len(s) {
		return t, false
	}
	raw, err := base64.URLEncoding.Strict().DecodeString(s)
	if err != nil || len(raw) != TokenSize {
		return t, false
	}
	copy(t[:], raw)
	return t, true
}

var requestCookies = cookie.New()

// TokenFromRequest reads the session cookie from r. A missing cookie or a
// malformed value reports false and is never an error.
func TokenFromRequest(r *http.Request) (Token, bool) {
	if r == nil {
		return Token{}, false
	}
	value, err := requestCookies.Get(r, CookieName)
	if err != nil {
		return Token{}, false
	}
	return DecodeToken(value)
}
