package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/paidform/pkg/validator"
	"github.com/dmitrymomot/paidform/requests"
)

// Element IDs the handlers target.
const (
	FormID       = "request-form"
	SubmitAreaID = "submit-area"
	SubmitButton = "submit-button"
)

// FormView is everything the request form renders.
type FormView struct {
	Values requests.Submission
	Errors validator.ValidationErrors
	Paid   bool
}

// Form renders the request form. Posting it swaps the form in place.
func Form(v FormView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw("<form")
		m.attr("id", FormID)
		m.attr("method", "post")
		m.attr("action", "/submit")
		m.attr("hx-post", "/submit")
		m.attr("hx-target", "this")
		m.attr("hx-swap", "outerHTML")
		m.attr("hx-indicator", "#"+SubmitButton)
		m.attr("hx-disabled-elt", "#"+SubmitButton)
		m.raw(" novalidate>")

		m.raw("<fieldset><legend>Student Information</legend>")
		input(m, v, "name", "Name", "text", v.Values.Name, "Enter your full name")
		input(m, v, "email", "Email", "email", v.Values.Email, "Enter your email address")
		m.raw("</fieldset>")

		m.raw("<fieldset><legend>Academic Details</legend>")
		gradeSelect(m, v)
		input(m, v, "subjects", "Subjects", "text", v.Values.Subjects, "Enter subjects (e.g., Mathematics, Science)")
		m.raw("</fieldset>")

		m.raw("<fieldset><legend>Your Request</legend>")
		label(m, "message", "Message")
		m.raw("<textarea")
		m.attr("id", fieldID("message"))
		m.attr("name", "message")
		m.attr("placeholder", "Please describe your request in detail")
		m.flag(`aria-invalid="true"`, v.Errors.Has("message"))
		m.raw(">")
		m.text(v.Values.Message)
		m.raw("</textarea>")
		fieldError(m, v.Errors, "message")
		m.raw("</fieldset>")

		m.raw("</form>")
	})
}

// SubmitArea renders the submit button, enabled once the payment is completed.
// The button sits outside the form so the form can be swapped without
// touching the PayPal buttons.
func SubmitArea(paid bool) templ.Component {
	return submitArea(paid, false)
}

// SubmitAreaOOB is SubmitArea as an out-of-band swap.
func SubmitAreaOOB(paid bool) templ.Component {
	return submitArea(paid, true)
}

func submitArea(paid, oob bool) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw("<div")
		m.attr("id", SubmitAreaID)
		m.flag(`hx-swap-oob="true"`, oob)
		m.raw("><button")
		m.attr("id", SubmitButton)
		m.attr("type", "submit")
		m.attr("form", FormID)
		m.flag("disabled", !paid)
		m.raw(`><span class="idle-label">Submit Request</span><span class="htmx-indicator">Submitting...</span></button>`)
		if !paid {
			m.raw(`<p class="hint">Complete the payment to enable submission.</p>`)
		}
		m.raw("</div>")
	})
}

func fieldID(name string) string {
	return "field-" + name
}

func label(m *markup, name, text string) {
	m.raw("<label")
	m.attr("for", fieldID(name))
	m.raw(">")
	m.text(text)
	m.raw("</label>")
}

func input(m *markup, v FormView, name, text, typ, value, placeholder string) {
	label(m, name, text)
	m.raw("<input")
	m.attr("id", fieldID(name))
	m.attr("name", name)
	m.attr("type", typ)
	m.attr("value", value)
	m.attr("placeholder", placeholder)
	m.flag(`aria-invalid="true"`, v.Errors.Has(name))
	m.raw(">")
	fieldError(m, v.Errors, name)
}

func gradeSelect(m *markup, v FormView) {
	label(m, "grade", "Grade")
	m.raw("<select")
	m.attr("id", fieldID("grade"))
	m.attr("name", "grade")
	m.flag(`aria-invalid="true"`, v.Errors.Has("grade"))
	m.raw(`><option value="">Select your grade</option>`)
	for _, g := range requests.Grades() {
		m.raw("<option")
		m.attr("value", g)
		m.flag("selected", g == v.Values.Grade)
		m.raw(">")
		m.text(g)
		m.raw("</option>")
	}
	m.raw("</select>")
	fieldError(m, v.Errors, "grade")
}

func fieldError(m *markup, errs validator.ValidationErrors, name string) {
	msg := errs.First(name)
	if msg == "" {
		return
	}
	m.raw(`<p class="field-error"`)
	m.attr("id", fieldID(name)+"-error")
	m.raw(">")
	m.text(msg)
	m.raw("</p>")
}
