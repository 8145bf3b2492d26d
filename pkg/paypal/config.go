package paypal

// Environment base URLs for the REST API.
const (
	SandboxURL = "https://api-m.sandbox.paypal.com"
	LiveURL    = "https://api-m.paypal.com"
)

// Config holds PayPal REST credentials, parsed from env with caarlos0/env.
type Config struct {
	ClientID     string `env:"PAYPAL_CLIENT_ID"`
	ClientSecret string `env:"PAYPAL_CLIENT_SECRET"`
	Environment  string `env:"PAYPAL_ENVIRONMENT" envDefault:"sandbox"` // sandbox or live
	BaseURL      string `env:"PAYPAL_BASE_URL"`                         // overrides Environment
}

func (c Config) baseURL() string {
	switch {
	case c.BaseURL != "":
		return c.BaseURL
	case c.Environment == "live":
		return LiveURL
	default:
		return SandboxURL
	}
}
