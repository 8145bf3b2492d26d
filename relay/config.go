package relay

// Config holds the static envelope of every notification.
type Config struct {
	From     string `env:"MAIL_FROM,required"`
	FromName string `env:"MAIL_FROM_NAME" envDefault:"Request Form"`
	To       string `env:"MAIL_TO,required"`
}
