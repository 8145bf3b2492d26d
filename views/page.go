package views

import (
	"context"
	"embed"
	"net/url"

	"github.com/a-h/templ"
)

//go:embed static
var Assets embed.FS

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// PageView is the full request page.
type PageView struct {
	Form       FormView
	PriceLabel string // e.g. "USD 10.00"
	ClientID   string // PayPal client ID; empty hides the buttons
	Currency   string
}

// PayPalSDKURL is the JS SDK URL for a CAPTURE intent checkout.
func PayPalSDKURL(clientID, currency string) string {
	q := url.Values{}
	q.Set("client-id", clientID)
	q.Set("currency", currency)
	q.Set("intent", "capture")
	return "https://www.paypal.com/sdk/js?" + q.Encode()
}

// Page renders the whole document.
func Page(v PageView) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw(`<title>Request Form</title>`)
		m.raw(`<link rel="stylesheet" href="/static/app.css">`)
		m.raw("<script")
		m.attr("src", htmxScript)
		m.raw("></script>")
		if v.ClientID != "" {
			m.raw("<script")
			m.attr("src", PayPalSDKURL(v.ClientID, v.Currency))
			m.raw("></script>")
		}
		m.raw(`<script src="/static/app.js" defer></script>`)
		m.raw("</head><body><main><h1>Request Form</h1>")

		m.component(ctx, Form(v.Form))

		m.raw(`<section id="payment"><h2>Payment (`)
		m.text(v.PriceLabel)
		m.raw(`)</h2>`)
		if v.ClientID == "" {
			m.raw(`<p class="hint">Payments are not configured.</p>`)
		}
		m.raw(`<div id="paypal-buttons"></div></section>`)

		m.component(ctx, SubmitArea(v.Form.Paid))
		m.raw("</main>")
		m.component(ctx, Toasts())
		m.raw("</body></html>")
	})
}

// Toasts is the container toast events are appended to.
func Toasts() templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<div id="toasts" aria-live="polite"></div>`)
	})
}
