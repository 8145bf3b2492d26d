package paypal

import (
	"errors"
	"fmt"
)

var (
	ErrMissingClientID     = errors.New("paypal: missing client ID")
	ErrMissingClientSecret = errors.New("paypal: missing client secret")
	ErrMissingOrderID      = errors.New("paypal: missing order ID")
	ErrFetchFailed         = errors.New("paypal: request failed")
	ErrRequestFailed       = errors.New("paypal: request returned non-success status")
	ErrDecodeFailed        = errors.New("paypal: failed to decode response")

	// ErrNotCompleted means the capture call succeeded but the order is
	// not in COMPLETED status (e.g. PENDING review).
	ErrNotCompleted = errors.New("paypal: capture not completed")
)

// APIError is the error body returned by the REST API.
type APIError struct {
	Name       string        `json:"name"`
	Message    string        `json:"message"`
	DebugID    string        `json:"debug_id"`
	Details    []ErrorDetail `json:"details"`
	StatusCode int           `json:"-"`
}

// ErrorDetail describes one issue in an APIError.
type ErrorDetail struct {
	Issue       string `json:"issue"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("paypal: status=%d name=%s", e.StatusCode, e.Name)
	if len(e.Details) > 0 {
		msg += " issue=" + e.Details[0].Issue
	}
	if e.DebugID != "" {
		msg += " debug_id=" + e.DebugID
	}
	return msg
}

// Issue returns the first detail issue code, e.g. INSTRUMENT_DECLINED.
func (e *APIError) Issue() string {
	if len(e.Details) == 0 {
		return ""
	}
	return e.Details[0].Issue
}
