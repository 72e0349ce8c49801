// Package redis connects to Redis with retries and exposes a readiness
// check. Connection settings come from Config, populated from REDIS_*
// environment variables.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	r.Get("/healthz", httpserver.HealthCheckHandler(log, redis.Healthcheck(client)))
//
// Errors wrap the package sentinels with errors.Join, so callers match them
// with errors.Is.
package redis
