// Package smtp implements mailer.Sender over an SMTP relay using go-mail.
package smtp

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/paidform/pkg/mailer"
)

var (
	ErrMissingHost  = errors.New("smtp: host is required")
	ErrInvalidTLS   = errors.New("smtp: unknown TLS mode")
	ErrBuildMessage = errors.New("smtp: failed to build message")
)

// Sender delivers mail through an SMTP relay. Each Send dials a fresh
// connection and sends once.
type Sender struct {
	client *mail.Client
	from   string
	name   string
}

// New creates an SMTP sender. The connection is not opened until Send.
func New(cfg Config) (*Sender, error) {
	if cfg.Host == "" {
		return nil, ErrMissingHost
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
	}
	switch cfg.TLS {
	case "", "mandatory":
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	case "opportunistic":
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	case "none":
		opts = append(opts, mail.WithTLSPortPolicy(mail.NoTLS))
	case "ssl":
		opts = append(opts, mail.WithSSLPort(false))
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTLS, cfg.TLS)
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: %w", err)
	}

	from := cfg.SenderEmail
	if from == "" {
		from = cfg.Username
	}
	return &Sender{client: client, from: from, name: cfg.SenderName}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := s.message(email)
	if err != nil {
		return errors.Join(ErrBuildMessage, err)
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return nil
}

func (s *Sender) message(email *mailer.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if email.From != "" {
		if err := msg.From(email.From); err != nil {
			return nil, err
		}
	} else if err := msg.FromFormat(s.name, s.from); err != nil {
		return nil, err
	}
	if err := msg.To(email.To...); err != nil {
		return nil, err
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, err
		}
	}
	msg.Subject(email.Subject)
	for k, v := range email.Headers {
		msg.SetGenHeader(mail.Header(k), v)
	}

	if email.Text != "" {
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	} else {
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	}
	return msg, nil
}
