// Package mailer renders markdown email templates and delivers them through
// a pluggable Sender.
//
// A Mailer combines a Renderer with a Sender:
//
//	renderer := mailer.NewRenderer(templates.FS)
//	m := mailer.New(resend.New(resendCfg), renderer, mailer.Config{
//		FallbackSubject: "Notification",
//		DefaultLayout:   "base.html",
//	})
//
//	err := m.Send(ctx, mailer.SendParams{
//		To:       "ops@example.com",
//		Template: "request.md",
//		Data:     req,
//	})
//
// Templates are markdown with optional YAML frontmatter. The Subject key is
// itself a text/template executed with the same data:
//
//	---
//	Subject: New Request Submission
//	---
//	**Name:** {{ escape .Name }}
//
// The escape function (EscapeMarkdown) must wrap every user-supplied value.
// It neutralizes markdown and HTML so the value renders as literal text.
//
// Senders live in subpackages: resend (HTTP API), smtp (go-mail) and
// logsender (writes to slog, for development). Each makes exactly one
// delivery attempt; Mailer wraps failures with ErrSendFailed.
package mailer
