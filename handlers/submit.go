package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/paidform"
	"github.com/dmitrymomot/paidform/payment"
	"github.com/dmitrymomot/paidform/pkg/htmx"
	"github.com/dmitrymomot/paidform/relay"
	"github.com/dmitrymomot/paidform/requests"
	"github.com/dmitrymomot/paidform/views"
)

// Submit accepts the request form: JSON on /api/submit, HTMX on /submit.
type Submit struct {
	gate  Gate
	relay Relay
}

// NewSubmit creates the submission handler.
func NewSubmit(gate Gate, relay Relay) *Submit {
	return &Submit{gate: gate, relay: relay}
}

// SubmitResponse is the success body of /api/submit.
type SubmitResponse struct {
	Success bool `json:"success"`
}

func (h *Submit) Routes(r paidform.Router) {
	r.POST("/api/submit", h.api)
	r.POST("/submit", h.form)
}

// deliver checks the payment gate, makes one relay attempt and resets the
// session's payment state on success.
func (h *Submit) deliver(c paidform.Context, s requests.Submission) error {
	sid := currentSession(c)
	st, err := h.gate.Require(c, sid)
	if err != nil {
		return err
	}
	if err := h.relay.Dispatch(c, s, st.OrderID); err != nil {
		return err
	}
	if err := h.gate.Reset(c, sid); err != nil {
		c.LogWarn("reset payment state", "error", err)
	}
	return nil
}

func (h *Submit) api(c paidform.Context) error {
	var req requests.Submission
	errs, err := c.BindJSON(&req)
	if err != nil {
		return err
	}
	if !errs.IsEmpty() {
		return paidform.ErrUnprocessable(msgValidation, paidform.WithFields(requests.Messages(errs).Fields()))
	}

	err = h.deliver(c, req)
	switch {
	case errors.Is(err, payment.ErrNotCompleted):
		return paidform.ErrPaymentRequired(msgPaymentRequired, paidform.WithError(err))
	case errors.Is(err, relay.ErrDispatchFailed):
		return paidform.ErrInternal(msgSendFailed, paidform.WithError(err))
	case err != nil:
		return err
	}
	return c.JSON(http.StatusOK, SubmitResponse{Success: true})
}

// form handles the HTMX post and re-renders the form in place.
func (h *Submit) form(c paidform.Context) error {
	var req requests.Submission
	errs, err := c.Bind(&req)
	if err != nil {
		return err
	}
	if !errs.IsEmpty() {
		return c.Render(http.StatusUnprocessableEntity, views.Form(views.FormView{
			Values: req,
			Errors: requests.Messages(errs),
		}))
	}

	err = h.deliver(c, req)
	switch {
	case errors.Is(err, payment.ErrNotCompleted):
		return c.Render(http.StatusPaymentRequired, views.Form(views.FormView{Values: req}),
			htmx.WithToast(htmx.LevelError, msgPaymentRequired),
			htmx.WithOOB(views.SubmitAreaOOB(false)),
		)
	case errors.Is(err, relay.ErrDispatchFailed):
		return c.Render(http.StatusInternalServerError, views.Form(views.FormView{Values: req}),
			htmx.WithToast(htmx.LevelError, msgSubmitFailed),
		)
	case err != nil:
		return err
	}

	return c.Render(http.StatusOK, views.Form(views.FormView{}),
		htmx.WithToast(htmx.LevelSuccess, msgSubmitted),
		htmx.WithOOB(views.SubmitAreaOOB(false)),
	)
}
