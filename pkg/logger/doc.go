// Package logger builds slog loggers with functional options and injects
// request-scoped values from context.Context into every record.
//
// New returns a *slog.Logger whose handler is wrapped by LogHandlerDecorator.
// The decorator runs each registered ContextExtractor when a record is
// handled, which is how request ids reach log lines without being passed
// around explicitly.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "sessiond"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.InfoContext(ctx, "user authenticated", logger.Username(user.Name()))
//
// Attribute helpers (Error, Username, Realm, Component, ...) keep key names
// consistent. Error and Errors return an empty attribute for nil errors, so
// they can be passed without a nil check.
//
// Session tokens, passwords and password hashes are never logged.
package logger
