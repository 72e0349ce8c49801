// Package httpserver wraps net/http with graceful shutdown, timeouts from
// configuration, life-cycle hooks and a health-check handler.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled or SIGINT/SIGTERM arrives, then calls
// http.Server.Shutdown with the configured deadline. Serve does the same on
// a caller-provided listener. Errors wrap ErrStart or ErrShutdown.
package httpserver
