package handlers

import (
	"context"

	"github.com/dmitrymomot/paidform/payment"
	"github.com/dmitrymomot/paidform/pkg/paypal"
	"github.com/dmitrymomot/paidform/requests"
)

// Gate is the payment gate the handlers drive. *payment.Gate implements it.
type Gate interface {
	CreateOrder(ctx context.Context, sessionID string) (*paypal.Order, error)
	Approve(ctx context.Context, sessionID, orderID string) (payment.State, error)
	Fail(ctx context.Context, sessionID, cause string)
	State(ctx context.Context, sessionID string) (payment.State, error)
	Require(ctx context.Context, sessionID string) (payment.State, error)
	Reset(ctx context.Context, sessionID string) error
}

// Relay sends a submission notification. *relay.Relay implements it.
type Relay interface {
	Dispatch(ctx context.Context, s requests.Submission, orderID string) error
}

// Client-facing messages.
const (
	msgPaymentRequired  = "Please complete the payment first"
	msgPaymentCompleted = "Payment completed successfully!"
	msgPaymentFailed    = "Payment failed. Please try again."
	msgCreateOrder      = "Failed to create order"
	msgSendFailed       = "Failed to send email"
	msgSubmitFailed     = "Failed to submit form. Please try again."
	msgSubmitted        = "Thank you! Your request has been received. We'll process it and email you within 24 hours."
	msgValidation       = "Validation failed"
	msgMissingSession   = "Missing form session"
	msgStaleOrder       = "Another payment is in progress for this form"
)
