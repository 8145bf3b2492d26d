// Package resend implements mailer.Sender over the Resend HTTP API.
package resend

import (
	"context"
	"fmt"
	"strconv"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/paidform/pkg/mailer"
)

// Sender delivers mail through Resend.
type Sender struct {
	client *resend.Client
	from   string
}

// Option configures a Sender.
type Option func(*Sender)

// WithClient replaces the Resend client, e.g. to point it at a test server.
func WithClient(c *resend.Client) Option {
	return func(s *Sender) { s.client = c }
}

// New creates a Resend sender.
func New(cfg Config, opts ...Option) *Sender {
	s := &Sender{
		client: resend.NewClient(cfg.APIKey),
		from:   mailer.Address(cfg.SenderName, cfg.SenderEmail),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements mailer.Sender with a single API call.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = s.from
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Headers: email.Headers,
	}
	if len(email.Tags) > 0 {
		req.Tags = make([]resend.Tag, 0, len(email.Tags))
		for name, value := range email.Tags {
			req.Tags = append(req.Tags, resend.Tag{Name: name, Value: tagValue(value)})
		}
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

// tagValue renders a tag value; presence-only tags become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
