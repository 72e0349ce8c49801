package basicauth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/sessionkit/pkg/basicauth"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCredentials_LoadRedis(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("loads valid digests", func(t *testing.T) {
		t.Parallel()
		mr, client := newRedis(t)
		mr.HSet("accounts", "admin", mustHash(t, "root").Digest())
		mr.HSet("accounts", "broken", "plain")

		creds := newCredentials()
		require.NoError(t, creds.LoadRedis(ctx, client, "accounts"))

		assert.Equal(t, 1, creds.Len())
		assert.NoError(t, creds.Check("admin", "root"))
		assert.Error(t, creds.Check("broken", "plain"))
	})

	t.Run("missing key is empty", func(t *testing.T) {
		t.Parallel()
		_, client := newRedis(t)
		creds := newCredentials()
		require.NoError(t, creds.LoadRedis(ctx, client, "nothing"))
		assert.Zero(t, creds.Len())
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		mr, client := newRedis(t)
		mr.SetError("LOADING")

		err := newCredentials().LoadRedis(ctx, client, "accounts")
		assert.ErrorIs(t, err, basicauth.ErrLoadCredentials)
	})
}

func TestSaveRedis(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, client := newRedis(t)

	ok, err := basicauth.SaveRedis(ctx, client, "accounts", "admin", mustHash(t, "root"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = basicauth.SaveRedis(ctx, client, "accounts", "admin", mustHash(t, "other"))
	require.NoError(t, err)
	assert.False(t, ok, "existing users are never overwritten")

	creds := newCredentials()
	require.NoError(t, creds.LoadRedis(ctx, client, "accounts"))
	assert.NoError(t, creds.Check("admin", "root"))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mr, client := newRedis(t)
	mr.HSet("accounts", "ops", mustHash(t, "ops").Digest())
	mr.HSet("accounts", "admin", mustHash(t, "from-redis").Digest())

	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - username: guest\n    password: guest\n"), 0o600))

	cfg := basicauth.Config{
		Realm:      "Ops",
		Users:      map[string]string{"admin": mustHash(t, "root").Digest()},
		UsersFile:  path,
		RedisKey:   "accounts",
		BcryptCost: bcrypt.MinCost,
	}
	set, err := basicauth.NewFromConfig(ctx, cfg, client)
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, "Ops", set.Realm().Name())
	for user, pw := range map[string]string{"admin": "root", "guest": "guest", "ops": "ops"} {
		_, ok := set.Check(basicauth.BasicAuthorization(user, pw))
		assert.True(t, ok, user)
	}
	_, ok := set.Check(basicauth.BasicAuthorization("admin", "from-redis"))
	assert.False(t, ok)

	t.Run("invalid realm", func(t *testing.T) {
		t.Parallel()
		_, err := basicauth.NewFromConfig(ctx, basicauth.Config{Realm: "a\nb"}, nil)
		assert.ErrorIs(t, err, basicauth.ErrUnhandledCharacter)
	})

	t.Run("malformed env digest", func(t *testing.T) {
		t.Parallel()
		_, err := basicauth.NewFromConfig(ctx, basicauth.Config{Realm: "R", Users: map[string]string{"a": "b"}}, nil)
		assert.ErrorIs(t, err, basicauth.ErrLoadCredentials)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg := basicauth.DefaultConfig()
		assert.Equal(t, "Restricted", cfg.Realm)
		assert.Equal(t, "admin", cfg.AdminUser)
		assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	})
}
