// Package htmx holds the htmx request and response header helpers used by
// the page handlers.
//
// Client notifications travel as JSON HX-Trigger events:
//
//	htmx.TriggerToast(w, htmx.LevelSuccess, "Payment completed successfully!")
//	// HX-Trigger: {"toast":{"level":"success","message":"Payment completed successfully!"}}
//
// Render options configure partial responses:
//
//	c.Render(http.StatusOK, views.Form(state),
//	    htmx.WithToast(htmx.LevelError, "Failed to submit form. Please try again."),
//	    htmx.WithReswap(htmx.SwapOuterHTML),
//	)
package htmx
