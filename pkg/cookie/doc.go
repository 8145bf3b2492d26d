// Package cookie reads and writes plain and HMAC-signed cookies with shared
// attributes (path, domain, Secure, HttpOnly, SameSite).
//
//	m := cookie.New(cookie.WithSecret(cfg.Secret), cookie.WithSecure(true))
//	if err := m.SetSigned(w, "pf_session", sessionID, 3600); err != nil {
//	    // cookie.ErrNoSecret
//	}
//	sessionID, err := m.GetSigned(r, "pf_session") // ErrNotFound, ErrBadSig
package cookie
