package payment

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Config is the fixed price and state retention, parsed with caarlos0/env.
type Config struct {
	Amount   string        `env:"PAYMENT_AMOUNT" envDefault:"10.00"`
	Currency string        `env:"PAYMENT_CURRENCY" envDefault:"USD"`
	StateTTL time.Duration `env:"PAYMENT_STATE_TTL" envDefault:"1h"`
}

// Validate checks that Amount is a positive decimal and Currency an ISO 4217 code.
func (c Config) Validate() error {
	v, err := strconv.ParseFloat(c.Amount, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("payment: invalid amount %q", c.Amount)
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("payment: invalid currency %q: %w", c.Currency, err)
	}
	return nil
}

// PriceLabel formats the price for display, e.g. "USD 10.00".
func (c Config) PriceLabel() string {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return c.Currency + " " + c.Amount
	}
	v, err := strconv.ParseFloat(c.Amount, 64)
	if err != nil {
		return c.Currency + " " + c.Amount
	}
	return message.NewPrinter(language.English).Sprint(currency.ISO(unit.Amount(v)))
}
