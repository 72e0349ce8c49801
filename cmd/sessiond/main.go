// Command sessiond is a small HTTP service that counts visits in a session
// and guards a few routes with Basic authentication.
package main

import (
	"context"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/pkg/basicauth"
	"github.com/dmitrymomot/sessionkit/pkg/clientip"
	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/httpserver"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/metrics"
	"github.com/dmitrymomot/sessionkit/pkg/redis"
	"github.com/dmitrymomot/sessionkit/pkg/requestid"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

const serviceName = "sessiond"

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("sessiond stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg   appConfig
		httpCfg  httpserver.Config
		sessCfg  session.Config
		authCfg  basicauth.Config
		redisCfg redis.Config
		ipCfg    clientip.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&sessCfg) },
		func() error { return config.Load(&authCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&ipCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, serviceName),
		logger.WithContextExtractors(requestid.LogExtractor(), clientip.LogExtractor()),
	)
	logger.SetAsDefault(log)

	collector := metrics.New(serviceName, nil)

	var (
		client goredis.UniversalClient
		checks []func(context.Context) error
	)
	if redisCfg.ConnectionURL != "" {
		c, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer c.Close()
		client = c
		checks = append(checks, redis.Healthcheck(c))
	}

	accounts, err := basicauth.NewFromConfig(ctx, authCfg, client,
		basicauth.WithLogger(log),
		basicauth.WithRecorder(collector),
	)
	if err != nil {
		return err
	}
	if accounts.Len() == 0 {
		log.Warn("no basic auth accounts configured, protected routes will reject every request")
	}

	store := session.NewFromConfig[Visits](sessCfg,
		session.WithLogger(log),
		session.WithRecorder(collector),
	)
	collector.TrackLiveSessions(serviceName, store.Len)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(app{
		store:     store,
		accounts:  accounts,
		adminUser: authCfg.AdminUser,
		clientIP:  clientip.NewFromConfig(ipCfg),
		metrics:   collector,
		log:       log,
		checks:    checks,
	}))
}
