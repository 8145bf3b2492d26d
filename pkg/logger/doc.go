// Package logger builds slog loggers with request-scoped attributes and
// optional Sentry reporting.
//
// Context extractors pull values such as the request ID out of the context
// on every log call:
//
//	log, flush := logger.New(cfg, middlewares.RequestIDExtractor())
//	defer flush(ctx)
//	log.InfoContext(ctx, "request submitted", slog.String("grade", grade))
//
// With a Sentry DSN, errors become Sentry issues and warnings are kept as
// Sentry logs. Without one, output goes to stdout only. NewNope returns a
// logger that discards everything, for tests and defaults.
package logger
