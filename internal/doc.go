// Package internal is the HTTP kernel behind the paidform root package:
// App, Context, Router, HTTPError and the server runtime. Import
// github.com/dmitrymomot/paidform, which re-exports the public API.
//
// Handlers return errors instead of writing them:
//
//	func (h *Submit) api(c paidform.Context) error {
//	    var req requests.Submission
//	    fields, err := c.BindJSON(&req)
//	    if err != nil {
//	        return paidform.ErrBadRequest("Invalid request body", paidform.WithError(err))
//	    }
//	    ...
//	    return c.JSON(http.StatusOK, map[string]bool{"success": true})
//	}
//
// Context implements context.Context, so it can be passed straight to
// outbound calls and is cancelled with the request.
//
// For htmx requests ResponseWriter rewrites non-200 statuses to 200 so the
// returned fragment is still swapped.
package internal
