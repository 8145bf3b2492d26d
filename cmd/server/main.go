package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/paidform"
	"github.com/dmitrymomot/paidform/handlers"
	"github.com/dmitrymomot/paidform/middlewares"
	"github.com/dmitrymomot/paidform/payment"
	"github.com/dmitrymomot/paidform/pkg/cache"
	"github.com/dmitrymomot/paidform/pkg/cookie"
	"github.com/dmitrymomot/paidform/pkg/logger"
	"github.com/dmitrymomot/paidform/pkg/mailer"
	"github.com/dmitrymomot/paidform/pkg/mailer/logsender"
	"github.com/dmitrymomot/paidform/pkg/mailer/resend"
	"github.com/dmitrymomot/paidform/pkg/mailer/smtp"
	"github.com/dmitrymomot/paidform/pkg/paypal"
	"github.com/dmitrymomot/paidform/pkg/redis"
	"github.com/dmitrymomot/paidform/relay"
	"github.com/dmitrymomot/paidform/views"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := paidform.LoadConfig(".env")
	if err != nil {
		return err
	}

	log, flushLogs := logger.New(cfg.Log, middlewares.RequestIDExtractor())
	runOpts := []paidform.RunOption{
		paidform.WithContext(ctx),
		paidform.ShutdownTimeout(cfg.ShutdownTimeout),
	}

	store, storeOpts, healthOpts, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	runOpts = append(runOpts, storeOpts...)
	runOpts = append(runOpts, paidform.ShutdownHook(flushLogs))

	sender, err := newSender(cfg, log)
	if err != nil {
		return err
	}

	processor, err := paypal.New(cfg.PayPal)
	if err != nil {
		return fmt.Errorf("paypal: %w", err)
	}

	gate := payment.NewGate(store, processor, cfg.Payment, payment.WithLogger(log))
	notify := relay.New(relay.NewMailer(sender, cfg.Mailer), cfg.Relay, relay.WithLogger(log))

	app := paidform.New(buildOptions(cfg, log, gate, notify, healthOpts)...)
	return app.Run(cfg.Addr, runOpts...)
}

// buildOptions assembles the app from its dependencies.
func buildOptions(cfg paidform.Config, log *slog.Logger, gate handlers.Gate, notify handlers.Relay, healthOpts []paidform.HealthOption) []paidform.Option {
	mw := []paidform.Middleware{
		middlewares.RequestID(),
		middlewares.Recover(),
	}
	if len(cfg.CORSOrigins) > 0 {
		mw = append(mw, middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)))
	}
	mw = append(mw, middlewares.Timeout(cfg.RequestTimeout))

	return []paidform.Option{
		paidform.WithLogger(log, "paidform"),
		paidform.WithCookieOptions(cookieOptions(cfg.Cookie, log)...),
		paidform.WithMiddleware(mw...),
		paidform.WithStaticFiles("/static/", views.Assets, "static"),
		paidform.WithHandlers(
			handlers.NewPage(gate, cfg.Payment, cfg.PayPal.ClientID),
			handlers.NewPayment(gate, cfg.Payment, cfg.PayPal.ClientID),
			handlers.NewSubmit(gate, notify),
		),
		paidform.WithErrorHandler(paidform.HandleError),
		paidform.WithNotFoundHandler(paidform.NotFound),
		paidform.WithMethodNotAllowedHandler(paidform.MethodNotAllowed),
		paidform.WithHealthChecks(healthOpts...),
	}
}

// openStore returns the payment state store: Redis when REDIS_URL is set,
// memory otherwise.
func openStore(ctx context.Context, cfg paidform.Config, log *slog.Logger) (cache.Cache[payment.State], []paidform.RunOption, []paidform.HealthOption, error) {
	if !cfg.Redis.Enabled() {
		log.Info("payment state in memory")
		store := cache.NewMemory[payment.State](cache.WithDefaultTTL(cfg.Payment.StateTTL))
		return store, []paidform.RunOption{paidform.ShutdownHook(closer(store))}, nil, nil
	}

	client, err := redis.Open(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("redis: %w", err)
	}
	log.Info("payment state in redis")
	store := cache.NewRedis[payment.State](client, nil,
		cache.WithPrefix("paidform:payment:"),
		cache.WithRedisDefaultTTL(cfg.Payment.StateTTL),
	)
	return store,
		[]paidform.RunOption{paidform.ShutdownHook(redis.Shutdown(client))},
		[]paidform.HealthOption{paidform.WithReadinessCheck("redis", redis.Healthcheck(client))},
		nil
}

func closer(c interface{ Close() error }) func(context.Context) error {
	return func(context.Context) error { return c.Close() }
}

// newSender picks the mail relay backend.
func newSender(cfg paidform.Config, log *slog.Logger) (mailer.Sender, error) {
	switch cfg.MailProvider {
	case paidform.MailProviderResend:
		return resend.New(cfg.Resend), nil
	case paidform.MailProviderSMTP:
		s, err := smtp.New(cfg.SMTP)
		if err != nil {
			return nil, fmt.Errorf("smtp: %w", err)
		}
		return s, nil
	default:
		log.Warn("MAIL_PROVIDER=log: requests are logged, not emailed")
		return logsender.New(log), nil
	}
}

// cookieOptions signs cookies with COOKIE_SECRET, or with a per-process
// secret when none is set. Form sessions then end on restart.
func cookieOptions(cfg cookie.Config, log *slog.Logger) []cookie.Option {
	if cfg.Secret == "" {
		buf := make([]byte, cookie.MinSecretLength)
		_, _ = rand.Read(buf)
		cfg.Secret = hex.EncodeToString(buf)
		log.Warn("COOKIE_SECRET not set: using a random secret")
	}
	return cfg.Options()
}
