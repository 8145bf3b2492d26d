package paidform

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/paidform/payment"
	"github.com/dmitrymomot/paidform/pkg/cookie"
	"github.com/dmitrymomot/paidform/pkg/logger"
	"github.com/dmitrymomot/paidform/pkg/mailer"
	"github.com/dmitrymomot/paidform/pkg/mailer/resend"
	"github.com/dmitrymomot/paidform/pkg/mailer/smtp"
	"github.com/dmitrymomot/paidform/pkg/paypal"
	"github.com/dmitrymomot/paidform/pkg/redis"
	"github.com/dmitrymomot/paidform/relay"
)

// Mail providers selectable with MAIL_PROVIDER.
const (
	MailProviderLog    = "log"
	MailProviderResend = "resend"
	MailProviderSMTP   = "smtp"
)

// Config is the whole app configuration, read from the environment.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:","`
	MailProvider    string        `env:"MAIL_PROVIDER" envDefault:"log"`

	Log     logger.Config
	Cookie  cookie.Config
	Redis   redis.Config
	PayPal  paypal.Config
	Payment payment.Config
	Mailer  mailer.Config
	Resend  resend.Config
	SMTP    smtp.Config
	Relay   relay.Config
}

// LoadConfig loads the given .env files (missing files are skipped),
// then parses the environment. Variables already set win over files.
func LoadConfig(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	switch c.MailProvider {
	case MailProviderLog:
	case MailProviderResend:
		if c.Resend.APIKey == "" {
			errs = append(errs, errors.New("config: RESEND_API_KEY is required for the resend provider"))
		}
	case MailProviderSMTP:
		if c.SMTP.Username == "" || c.SMTP.Password == "" {
			errs = append(errs, errors.New("config: SMTP_USERNAME and SMTP_PASSWORD are required for the smtp provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: unknown MAIL_PROVIDER %q", c.MailProvider))
	}
	if err := c.Payment.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Cookie.Secret != "" && len(c.Cookie.Secret) < cookie.MinSecretLength {
		errs = append(errs, fmt.Errorf("config: COOKIE_SECRET must be at least %d bytes", cookie.MinSecretLength))
	}
	return errors.Join(errs...)
}
