package relay

import "errors"

var (
	// ErrDispatchFailed wraps any render or delivery failure.
	ErrDispatchFailed = errors.New("relay: failed to send email")
	ErrNoRecipient    = errors.New("relay: recipient is not configured")
)
