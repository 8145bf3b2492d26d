package paypal

import (
	"math"
	"strconv"
	"strings"
)

// Intents and statuses used by the Orders v2 API.
const (
	IntentCapture   = "CAPTURE"
	StatusCreated   = "CREATED"
	StatusApproved  = "APPROVED"
	StatusCompleted = "COMPLETED"
)

// Amount is a decimal money value, e.g. {USD, "10.00"}.
type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// Equal reports whether a and b are the same money value. Values are
// compared numerically, so "10" equals "10.00".
func (a Amount) Equal(b Amount) bool {
	if !strings.EqualFold(a.CurrencyCode, b.CurrencyCode) {
		return false
	}
	x, err := strconv.ParseFloat(a.Value, 64)
	if err != nil {
		return false
	}
	y, err := strconv.ParseFloat(b.Value, 64)
	if err != nil {
		return false
	}
	return math.Round(x*100) == math.Round(y*100)
}

// PurchaseUnit is one item group of an order.
type PurchaseUnit struct {
	Payments    *Payments `json:"payments,omitempty"`
	Amount      *Amount   `json:"amount,omitempty"`
	ReferenceID string    `json:"reference_id,omitempty"`
	Description string    `json:"description,omitempty"`
	CustomID    string    `json:"custom_id,omitempty"`
}

// Payments lists captures made on a purchase unit.
type Payments struct {
	Captures []Capture `json:"captures"`
}

// Capture is a single captured payment.
type Capture struct {
	Amount   *Amount `json:"amount,omitempty"`
	ID       string  `json:"id"`
	Status   string  `json:"status"`
	CustomID string  `json:"custom_id,omitempty"`
}

// Order is an Orders v2 resource.
type Order struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	Intent        string         `json:"intent,omitempty"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units,omitempty"`
}

// CaptureID returns the first capture ID on the order, if any.
func (o *Order) CaptureID() string {
	for _, pu := range o.PurchaseUnits {
		if pu.Payments == nil {
			continue
		}
		for _, c := range pu.Payments.Captures {
			if c.ID != "" {
				return c.ID
			}
		}
	}
	return ""
}

// CustomID returns the custom_id set at creation, read from the first
// purchase unit or capture that carries one.
func (o *Order) CustomID() string {
	for _, pu := range o.PurchaseUnits {
		if pu.CustomID != "" {
			return pu.CustomID
		}
		if pu.Payments == nil {
			continue
		}
		for _, c := range pu.Payments.Captures {
			if c.CustomID != "" {
				return c.CustomID
			}
		}
	}
	return ""
}

// UnitAmount returns the amount of the first purchase unit.
func (o *Order) UnitAmount() (Amount, bool) {
	for _, pu := range o.PurchaseUnits {
		if pu.Amount != nil {
			return *pu.Amount, true
		}
	}
	return Amount{}, false
}

// CapturedAmount returns the amount of the first capture.
func (o *Order) CapturedAmount() (Amount, bool) {
	for _, pu := range o.PurchaseUnits {
		if pu.Payments == nil {
			continue
		}
		for _, c := range pu.Payments.Captures {
			if c.Amount != nil {
				return *c.Amount, true
			}
		}
	}
	return Amount{}, false
}

// CreateOrderRequest is the body of POST /v2/checkout/orders.
type CreateOrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
}
