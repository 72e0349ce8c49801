package redis

import "time"

// Config holds Redis connection configuration
type Config struct {
	// ConnectionURL has the form redis://:password@localhost:6379/0.
	// An empty URL means Redis is not used.
	ConnectionURL  string        `env:"REDIS_URL"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}
