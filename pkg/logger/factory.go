package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// New builds a logger writing to stdout with the context extractors applied.
// Without a Sentry DSN the returned flush func is a no-op.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, func(context.Context) error) {
	return NewWithWriter(os.Stdout, cfg, extractors...)
}

// NewWithWriter is New with an explicit output writer.
func NewWithWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) (*slog.Logger, func(context.Context) error) {
	opts := &slog.HandlerOptions{Level: cfg.level()}
	var out slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		out = slog.NewTextHandler(w, opts)
	} else {
		out = slog.NewJSONHandler(w, opts)
	}

	noflush := func(context.Context) error { return nil }
	if cfg.Sentry.DSN == "" {
		return slog.New(NewContextHandler(out, extractors...)), noflush
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(out).Error("sentry init failed, logging to output only", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(out, extractors...)), noflush
	}

	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.Sentry.MinLevel >= slog.LevelError {
		logLevels = []slog.Level{slog.LevelError}
	}
	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background())

	flush := func(ctx context.Context) error {
		timeout := 2 * time.Second
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
		}
		sentry.Flush(timeout)
		return nil
	}
	return slog.New(NewContextHandler(newMultiHandler(out, sentryHandler), extractors...)), flush
}
