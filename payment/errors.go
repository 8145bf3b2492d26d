package payment

import "errors"

var (
	ErrMissingSession = errors.New("payment: missing session")
	ErrMissingOrderID = errors.New("payment: missing order ID")

	// ErrNotCompleted gates submission: the session has no captured payment.
	ErrNotCompleted = errors.New("payment: not completed")

	// ErrCreateOrderFailed wraps provider errors from order creation.
	ErrCreateOrderFailed = errors.New("payment: failed to create order")

	// ErrCaptureFailed wraps provider errors from capture. The session is
	// back in NotStarted and the buyer may retry.
	ErrCaptureFailed = errors.New("payment: capture failed")

	// ErrOrderMismatch means the order was not created by this session or
	// does not carry the fixed price.
	ErrOrderMismatch = errors.New("payment: order does not match session")

	// ErrStaleOrder means the session approved another order while this one
	// was being captured. The newer order's state is kept.
	ErrStaleOrder = errors.New("payment: session moved to another order")

	ErrStateUnavailable = errors.New("payment: state store unavailable")
)
