// Package middlewares holds the request middlewares the app installs.
//
// RequestID assigns each request an ID (upstream X-Request-ID when it is
// sane, a ULID otherwise) and RequestIDExtractor puts it on every log line:
//
//	log, _ := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// Recover and Timeout convert panics and expired deadlines into
// *PanicError and *TimeoutError so a single ErrorHandler can render them.
//
// CORS opens the JSON API to configured origins.
package middlewares
