// Package logsender provides a mailer.Sender that logs messages instead of
// delivering them. Use it in development when no relay is configured.
package logsender

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/paidform/pkg/mailer"
)

// Sender logs every message at info level and keeps the most recent one.
type Sender struct {
	logger *slog.Logger
	last   *mailer.Email
	mu     sync.Mutex
}

// New creates a log sender. A nil logger uses slog.Default.
func New(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger}
}

// Send implements mailer.Sender. It never fails.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	s.mu.Lock()
	s.last = email
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "email not delivered: log sender",
		slog.Any("to", email.To),
		slog.String("from", email.From),
		slog.String("reply_to", email.ReplyTo),
		slog.String("subject", email.Subject),
		slog.String("text", email.Text),
	)
	return nil
}

// Last returns the most recently logged email, or nil.
func (s *Sender) Last() *mailer.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
