package basicauth_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/basicauth"
)

func TestCredentials_LoadYAML(t *testing.T) {
	t.Parallel()

	t.Run("hashed and plaintext entries", func(t *testing.T) {
		t.Parallel()
		doc := "users:\n" +
			"  - username: admin\n" +
			"    password_hash: '" + mustHash(t, "root").Digest() + "'\n" +
			"  - username: guest\n" +
			"    password: guest\n"

		creds := newCredentials()
		require.NoError(t, creds.LoadYAML(strings.NewReader(doc)))

		assert.Equal(t, 2, creds.Len())
		assert.NoError(t, creds.Check("admin", "root"))
		assert.NoError(t, creds.Check("guest", "guest"))
	})

	t.Run("earlier entries win", func(t *testing.T) {
		t.Parallel()
		creds := newCredentials()
		require.True(t, creds.Insert("admin", "original"))

		doc := "users:\n  - username: admin\n    password: replaced\n  - username: ops\n    password: ops\n"
		require.NoError(t, creds.LoadYAML(strings.NewReader(doc)))

		assert.NoError(t, creds.Check("admin", "original"))
		assert.Error(t, creds.Check("admin", "replaced"))
		assert.NoError(t, creds.Check("ops", "ops"))
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		creds := newCredentials()
		require.NoError(t, creds.LoadYAML(strings.NewReader("")))
		assert.Zero(t, creds.Len())
	})

	invalid := map[string]string{
		"syntax":             "users: [",
		"unknown field":      "users:\n  - username: a\n    pass: x\n",
		"missing username":   "users:\n  - password: x\n",
		"no password":        "users:\n  - username: a\n",
		"both passwords":     "users:\n  - username: a\n    password: x\n    password_hash: y\n",
		"malformed hash":     "users:\n  - username: a\n    password_hash: plain\n",
		"duplicate username": "users:\n  - username: a\n    password: x\n  - username: a\n    password: y\n",
	}
	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			creds := newCredentials()
			err := creds.LoadYAML(strings.NewReader(doc))
			assert.ErrorIs(t, err, basicauth.ErrInvalidUsersFile)
			assert.Zero(t, creds.Len(), "invalid documents add nothing")
		})
	}
}

func TestCredentials_LoadYAMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - username: a\n    password: b\n"), 0o600))

	creds := newCredentials()
	require.NoError(t, creds.LoadYAMLFile(path))
	assert.NoError(t, creds.Check("a", "b"))

	err := newCredentials().LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, basicauth.ErrInvalidUsersFile)
}
