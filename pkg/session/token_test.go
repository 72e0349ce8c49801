package session_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestTokenCodec(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		samples := []session.Token{
			{},
			{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9, 0xf8, 0xf7, 0xf6, 0xf5, 0xf4, 0xf3, 0xf2, 0xf1, 0xf0},
			{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		}
		for _, tok := range samples {
			encoded := session.EncodeToken(tok)
			assert.Len(t, encoded, 24)
			decoded, ok := session.DecodeToken(encoded)
			require.True(t, ok)
			assert.Equal(t, tok, decoded)
		}
	})

	t.Run("url safe alphabet", func(t *testing.T) {
		t.Parallel()
		tok := session.Token{0xfb, 0xff, 0xbf, 0xfb, 0xff, 0xbf, 0xfb, 0xff, 0xbf, 0xfb, 0xff, 0xbf, 0xfb, 0xff, 0xbf, 0xfb}
		encoded := tok.String()
		assert.NotContains(t, encoded, "+")
		assert.NotContains(t, encoded, "/")
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Parallel()
		for _, value := range []string{
			"",
			"not base64 at all!!!!!!!",
			session.EncodeToken(session.Token{})[:22],
			"AAAAAAAAAAAAAAAAAAAAAAAAAAAA",
			strings.Repeat("A", 24),
			"+/+/+/+/+/+/+/+/+/+/+w==",
		} {
			_, ok := session.DecodeToken(value)
			assert.False(t, ok, "value %q", value)
		}
	})
}

func TestTokenFromRequest(t *testing.T) {
	t.Parallel()

	tok := session.Token{9, 8, 7, 6, 5, 4, 3, 2, 1}

	t.Run("valid cookie", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: session.EncodeToken(tok)})

		got, ok := session.TokenFromRequest(r)
		require.True(t, ok)
		assert.Equal(t, tok, got)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()
		_, ok := session.TokenFromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, ok)
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "AAAA"})

		_, ok := session.TokenFromRequest(r)
		assert.False(t, ok)
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()
		_, ok := session.TokenFromRequest(nil)
		assert.False(t, ok)
	})
}
