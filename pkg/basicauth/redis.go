package basicauth

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// LoadRedis adds the accounts stored in the hash at key, where each field is
// a username and each value a bcrypt digest. Entries with malformed digests
// and usernames already present are skipped and logged.
func (c *Credentials) LoadRedis(ctx context.Context, client redis.Cmdable, key string) error {
	entries, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return errors.Join(ErrLoadCredentials, err)
	}

	added := 0
	for user, digest := range entries {
		hashed := NewHashed(digest)
		if !hashed.Valid() {
			c.opts.logger.WarnContext(ctx, "skipping malformed password hash", logger.Username(user))
			continue
		}
		if !c.Prehashed(user, hashed) {
			c.opts.logger.WarnContext(ctx, "skipping duplicate user", logger.Username(user))
			continue
		}
		added++
	}

	c.opts.logger.InfoContext(ctx, "loaded credentials from redis", logger.Count(added))
	return nil
}

// SaveRedis stores hashed for user in the hash at key. Like Prehashed it
// never overwrites: it returns false when the user already exists.
func SaveRedis(ctx context.Context, client redis.Cmdable, key, user string, hashed Hashed) (bool, error) {
	ok, err := client.HSetNX(ctx, key, user, hashed.Digest()).Result()
	if err != nil {
		return false, errors.Join(ErrLoadCredentials, err)
	}
	return ok, nil
}
