package relay

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/dmitrymomot/paidform/pkg/mailer"
	"github.com/dmitrymomot/paidform/requests"
)

//go:embed templates
var templates embed.FS

const templateName = "request.md"

// Templates returns the embedded notification templates.
func Templates() fs.FS {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewMailer builds a mailer over the embedded templates.
func NewMailer(sender mailer.Sender, cfg mailer.Config) *mailer.Mailer {
	return mailer.New(sender, mailer.NewRenderer(Templates()), cfg)
}

// Mailer is the subset of *mailer.Mailer the relay needs.
type Mailer interface {
	Send(ctx context.Context, params mailer.SendParams) error
}

// Relay turns a submission into one notification email.
type Relay struct {
	mailer Mailer
	logger *slog.Logger
	cfg    Config
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the logger used for dispatch outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Relay.
func New(m Mailer, cfg Config, opts ...Option) *Relay {
	r := &Relay{
		mailer: m,
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(slog.String("component", "relay"))
	return r
}

type message struct {
	Name     string
	Email    string
	Message  string
	Grade    string
	Subjects string
	OrderID  string
}

// Dispatch renders s and makes exactly one delivery attempt.
// orderID is the captured payment reference and may be empty.
func (r *Relay) Dispatch(ctx context.Context, s requests.Submission, orderID string) error {
	if r.cfg.To == "" {
		return errors.Join(ErrDispatchFailed, ErrNoRecipient)
	}

	err := r.mailer.Send(ctx, mailer.SendParams{
		To:       r.cfg.To,
		From:     mailer.Address(r.cfg.FromName, r.cfg.From),
		ReplyTo:  s.Email,
		Template: templateName,
		Tags:     mailer.Tags{"category": "request"},
		Data: message{
			Name:     s.Name,
			Email:    s.Email,
			Message:  s.Message,
			Grade:    s.Grade,
			Subjects: s.Subjects,
			OrderID:  orderID,
		},
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send request email",
			slog.String("reply_to", s.Email),
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
		return errors.Join(ErrDispatchFailed, err)
	}

	r.logger.InfoContext(ctx, "request email sent",
		slog.String("reply_to", s.Email),
		slog.String("order_id", orderID),
	)
	return nil
}
