package smtp

import "time"

// Config holds SMTP relay settings, parsed from env with caarlos0/env.
// TLS is one of "mandatory", "opportunistic", "none" or "ssl" (implicit TLS).
type Config struct {
	Host        string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Username    string        `env:"SMTP_USERNAME"`
	Password    string        `env:"SMTP_PASSWORD"`
	SenderEmail string        `env:"SMTP_FROM_EMAIL"`
	SenderName  string        `env:"SMTP_FROM_NAME"`
	TLS         string        `env:"SMTP_TLS" envDefault:"mandatory"`
	Port        int           `env:"SMTP_PORT" envDefault:"587"`
	Timeout     time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
}
