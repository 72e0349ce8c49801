package redis

import "errors"

var (
	ErrEmptyConnectionURL           = errors.New("redis.empty_connection_url")
	ErrFailedToParseRedisConnString = errors.New("redis.invalid_connection_url")
	// ErrRedisNotReady is returned by Connect when every ping attempt failed.
	ErrRedisNotReady     = errors.New("redis.not_ready")
	ErrHealthcheckFailed = errors.New("redis.healthcheck_failed")
)
