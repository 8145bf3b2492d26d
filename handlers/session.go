package handlers

import (
	"time"

	"github.com/dmitrymomot/paidform"
	"github.com/dmitrymomot/paidform/pkg/id"
)

// SessionCookie holds the signed form session ID that keys payment state.
const SessionCookie = "form_session"

var sessionIDs = paidform.NewExtractor(
	paidform.Validated(paidform.FromCookieSigned(SessionCookie), id.IsULID),
)

// currentSession returns the form session ID, or "" when the browser has none.
func currentSession(c paidform.Context) string {
	sid, _ := sessionIDs.Extract(c)
	return sid
}

// ensureSession returns the form session ID, issuing a new signed cookie
// when the request has no valid one.
func ensureSession(c paidform.Context, ttl time.Duration) (string, error) {
	if sid, ok := sessionIDs.Extract(c); ok {
		return sid, nil
	}
	sid := id.NewULID()
	if err := c.SetCookieSigned(SessionCookie, sid, int(ttl.Seconds())); err != nil {
		return "", err
	}
	return sid, nil
}
