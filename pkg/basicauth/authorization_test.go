package basicauth_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sessionkit/pkg/basicauth"
)

func basicHeader(payload string) string {
	return "Basic " + base64.URLEncoding.EncodeToString([]byte(payload))
}

func TestParseAuthorization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []string
		user     string
		password string
		ok       bool
	}{
		{name: "valid", values: []string{basicHeader("alice:wonderland")}, user: "alice", password: "wonderland", ok: true},
		{name: "lowercase scheme", values: []string{"basic " + base64.URLEncoding.EncodeToString([]byte("a:b"))}, user: "a", password: "b", ok: true},
		{name: "uppercase scheme", values: []string{"BASIC " + base64.URLEncoding.EncodeToString([]byte("a:b"))}, user: "a", password: "b", ok: true},
		{name: "password may contain colons", values: []string{basicHeader("bob:a:b:c")}, user: "bob", password: "a:b:c", ok: true},
		{name: "no colon means empty password", values: []string{basicHeader("carol")}, user: "carol", password: "", ok: true},
		{name: "empty user", values: []string{basicHeader(":pw")}, user: "", password: "pw", ok: true},
		{name: "missing header"},
		{name: "duplicate header", values: []string{basicHeader("a:b"), basicHeader("a:b")}},
		{name: "other scheme", values: []string{"Bearer abc"}},
		{name: "prefix only", values: []string{"Basic"}},
		{name: "bad base64", values: []string{"Basic !!!"}},
		{name: "invalid utf8 user", values: []string{basicHeader("\xff\xfe:pw")}},
		{name: "invalid utf8 password", values: []string{basicHeader("user:\xc3\x28")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := http.Header{}
			for _, v := range tt.values {
				h.Add("Authorization", v)
			}

			user, password, ok := basicauth.ParseAuthorization(h).Basic()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.user, user)
				assert.Equal(t, tt.password, password)
			}
		})
	}
}

func TestParseAuthorization_StandardAlphabet(t *testing.T) {
	t.Parallel()

	// Encodes to "dTo/Pz4=", which is not valid URL-safe base64.
	payload := "u:??>"
	h := http.Header{}
	h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(payload)))

	user, password, ok := basicauth.ParseAuthorization(h).Basic()
	assert.True(t, ok)
	assert.Equal(t, "u", user)
	assert.Equal(t, "??>", password)
}

func TestAuthorization_LogValue(t *testing.T) {
	t.Parallel()

	v := basicauth.BasicAuthorization("alice", "hunter2").LogValue()
	assert.NotContains(t, v.String(), "hunter2")
	assert.Contains(t, v.String(), "alice")
	assert.Equal(t, "unknown", basicauth.Authorization{}.LogValue().String())
}
