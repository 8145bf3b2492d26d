package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/paidform"
	"github.com/dmitrymomot/paidform/payment"
	"github.com/dmitrymomot/paidform/pkg/htmx"
)

// Payment exposes the PayPal button callbacks.
type Payment struct {
	gate     Gate
	cfg      payment.Config
	clientID string
}

// NewPayment creates the payment handler.
func NewPayment(gate Gate, cfg payment.Config, clientID string) *Payment {
	return &Payment{gate: gate, cfg: cfg, clientID: clientID}
}

// PaymentConfig is what the JS SDK needs to render the buttons.
type PaymentConfig struct {
	ClientID string `json:"client_id"`
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
	Intent   string `json:"intent"`
}

// OrderResponse is returned from order creation.
type OrderResponse struct {
	ID string `json:"id"`
}

// CaptureResponse is returned from a successful capture.
type CaptureResponse struct {
	Status    string `json:"status"`
	OrderID   string `json:"order_id"`
	CaptureID string `json:"capture_id,omitempty"`
}

type widgetError struct {
	Message string `json:"message" sanitize:"strip,collapse" validate:"max:500"`
}

func (h *Payment) Routes(r paidform.Router) {
	r.Route("/api", func(r paidform.Router) {
		r.GET("/payment/config", h.config)
		r.POST("/payment/error", h.widgetError)
		r.POST("/orders", h.createOrder)
		r.POST("/orders/{id}/capture", h.capture)
	})
}

func (h *Payment) config(c paidform.Context) error {
	return c.JSON(http.StatusOK, PaymentConfig{
		ClientID: h.clientID,
		Currency: h.cfg.Currency,
		Amount:   h.cfg.Amount,
		Intent:   "CAPTURE",
	})
}

// createOrder starts checkout. State is not touched until approval.
func (h *Payment) createOrder(c paidform.Context) error {
	sid, err := ensureSession(c, h.cfg.StateTTL)
	if err != nil {
		return err
	}

	order, err := h.gate.CreateOrder(c, sid)
	if err != nil {
		return paidform.ErrBadGateway(msgCreateOrder, paidform.WithError(err))
	}
	return c.JSON(http.StatusOK, OrderResponse{ID: order.ID})
}

// capture runs on buyer approval and moves the session to Completed.
// A capture that lost its session to a newer order reports a conflict.
func (h *Payment) capture(c paidform.Context) error {
	st, err := h.gate.Approve(c, currentSession(c), c.Param("id"))
	switch {
	case errors.Is(err, payment.ErrMissingSession), errors.Is(err, payment.ErrMissingOrderID):
		return paidform.ErrBadRequest(msgMissingSession, paidform.WithError(err))
	case errors.Is(err, payment.ErrCaptureFailed):
		if terr := c.Toast(htmx.LevelError, msgPaymentFailed); terr != nil {
			return terr
		}
		return c.JSON(http.StatusPaymentRequired, paidform.ErrorResponse{Error: msgPaymentFailed})
	case errors.Is(err, payment.ErrStaleOrder):
		return paidform.ErrConflict(msgStaleOrder, paidform.WithError(err))
	case err != nil:
		return err
	}

	if err := c.Toast(htmx.LevelSuccess, msgPaymentCompleted); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CaptureResponse{
		Status:    "COMPLETED",
		OrderID:   st.OrderID,
		CaptureID: st.CaptureID,
	})
}

// widgetError records an error raised by the PayPal buttons. State is
// unchanged; the buyer sees a failure toast.
func (h *Payment) widgetError(c paidform.Context) error {
	var req widgetError
	if _, err := c.BindJSON(&req); err != nil || req.Message == "" {
		req.Message = "unknown"
	}
	h.gate.Fail(c, currentSession(c), req.Message)

	if err := c.Toast(htmx.LevelError, msgPaymentFailed); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
