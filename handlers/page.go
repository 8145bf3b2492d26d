package handlers

import (
	"net/http"

	"github.com/dmitrymomot/paidform"
	"github.com/dmitrymomot/paidform/payment"
	"github.com/dmitrymomot/paidform/views"
)

// Page serves the request form.
type Page struct {
	gate     Gate
	cfg      payment.Config
	clientID string
}

// NewPage creates the page handler. clientID is the public PayPal client ID.
func NewPage(gate Gate, cfg payment.Config, clientID string) *Page {
	return &Page{gate: gate, cfg: cfg, clientID: clientID}
}

func (h *Page) Routes(r paidform.Router) {
	r.GET("/", h.show)
	r.GET("/payment/status", h.status)
}

// show renders the form and issues a form session when needed.
func (h *Page) show(c paidform.Context) error {
	sid, err := ensureSession(c, h.cfg.StateTTL)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, views.Page(views.PageView{
		Form:       views.FormView{Paid: paid(c, h.gate, sid)},
		PriceLabel: h.cfg.PriceLabel(),
		ClientID:   h.clientID,
		Currency:   h.cfg.Currency,
	}))
}

// status renders the submit button for the current payment state.
func (h *Page) status(c paidform.Context) error {
	return c.Render(http.StatusOK, views.SubmitArea(paid(c, h.gate, currentSession(c))))
}

// paid reports whether the session has a completed payment. Store errors
// read as unpaid; submission re-checks.
func paid(c paidform.Context, gate Gate, sid string) bool {
	st, err := gate.State(c, sid)
	if err != nil {
		c.LogWarn("read payment state", "error", err)
		return false
	}
	return st.Completed()
}
