// Package handlers wires the HTTP surface of the request form:
//
//	GET  /                          the page (issues the form session cookie)
//	GET  /payment/status            submit button for the current payment state
//	POST /submit                    HTMX form submission
//	POST /api/submit                JSON submission
//	GET  /api/payment/config        PayPal SDK settings
//	POST /api/orders                create a CAPTURE order
//	POST /api/orders/{id}/capture   capture on buyer approval
//	POST /api/payment/error         PayPal button error report
//
// Payment state is keyed by a signed form session cookie; submissions
// without a completed payment are rejected before the relay is called.
package handlers
