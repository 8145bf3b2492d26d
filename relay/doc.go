// Package relay delivers request submissions as notification emails.
//
// A Relay renders the embedded request.md template with all submitted
// fields escaped, then makes a single delivery attempt through the
// configured mailer. Failures are logged and returned wrapped in
// ErrDispatchFailed; nothing is retried.
//
//	m := relay.NewMailer(sender, mailer.Config{DefaultLayout: "base.html"})
//	r := relay.New(m, relay.Config{From: "noreply@example.com", To: "ops@example.com"})
//	err := r.Dispatch(ctx, submission, orderID)
package relay
