package basicauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Config holds Basic authentication configuration
type Config struct {
	Realm string `env:"BASIC_AUTH_REALM" envDefault:"Restricted"`

	// Users are username:bcrypt-digest pairs, e.g. "admin:$2a$10$...,ops:$2a$10$...".
	Users map[string]string `env:"BASIC_AUTH_USERS"`

	// UsersFile is an optional YAML account list.
	UsersFile string `env:"BASIC_AUTH_USERS_FILE"`

	// RedisKey is an optional Redis hash of username to bcrypt digest.
	// It is read only when a client is passed to NewFromConfig.
	RedisKey string `env:"BASIC_AUTH_REDIS_KEY"`

	// AdminUser is the only account admitted by admin-only routes.
	AdminUser string `env:"BASIC_AUTH_ADMIN_USER" envDefault:"admin"`

	BcryptCost int `env:"BASIC_AUTH_BCRYPT_COST" envDefault:"10"`
}

// DefaultConfig returns default Basic authentication configuration
func DefaultConfig() Config {
	return Config{
		Realm:      "Restricted",
		AdminUser:  "admin",
		BcryptCost: bcrypt.DefaultCost,
	}
}

// NewFromConfig loads accounts from every source named in cfg and freezes
// them under cfg.Realm. Sources are read in order Users, UsersFile, Redis;
// the first source to define a username wins. client may be nil.
func NewFromConfig(ctx context.Context, cfg Config, client redis.Cmdable, opts ...Option) (AccountSet, error) {
	realm, err := NewRealm(cfg.Realm)
	if err != nil {
		return AccountSet{}, err
	}

	creds := NewCredentials(append([]Option{WithCost(cfg.BcryptCost)}, opts...)...)
	for user, digest := range cfg.Users {
		hashed := NewHashed(digest)
		if !hashed.Valid() {
			return AccountSet{}, errors.Join(ErrLoadCredentials, fmt.Errorf("user %q: malformed password hash", user))
		}
		creds.Prehashed(user, hashed)
	}

	if cfg.UsersFile != "" {
		if err := creds.LoadYAMLFile(cfg.UsersFile); err != nil {
			return AccountSet{}, err
		}
	}

	if client != nil && cfg.RedisKey != "" {
		if err := creds.LoadRedis(ctx, client, cfg.RedisKey); err != nil {
			return AccountSet{}, err
		}
	}

	return creds.Freeze(realm), nil
}
