// Package views renders the request page: the form with inline field
// errors, the PayPal button container, the submit button and the toast
// container. Components satisfy templ.Component.
package views
