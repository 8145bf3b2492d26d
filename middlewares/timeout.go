package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/paidform/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout bounds the request context. Handlers see the deadline through
// c.Done() and the outbound calls made with c (PayPal, the mail relay).
// When the deadline passes before anything is written, the handler's
// result is replaced with a *TimeoutError.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			parent := c.Context()
			ctx, cancel := context.WithTimeout(parent, timeout)
			defer cancel()

			c.SetContext(ctx)
			err := next(c)
			c.SetContext(parent)

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Written() {
				c.LogWarn("request timeout", "timeout", timeout.String(), "error", err)
				return &TimeoutError{Duration: timeout}
			}
			return err
		}
	}
}
