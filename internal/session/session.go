// Package session provides the cookie-based session glue for the storefront.
// The identity service issues an opaque bearer token at login; it is kept in
// a secure, http-only cookie and passed explicitly to every authenticated
// API call. Nothing here validates the token.
package session

import (
	"net/http"
	"time"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "session"

	// DefaultTTL is how long the session cookie lives in the browser.
	DefaultTTL = 24 * time.Hour
)

// Token is the opaque bearer credential issued by the identity service.
// The zero value means "not logged in".
type Token string

// Valid reports whether the token is present.
func (t Token) Valid() bool {
	return t != ""
}

// Cookies writes and clears the session cookie. Secure should be true
// in production, where the site is served over TLS.
type Cookies struct {
	secure bool
	ttl    time.Duration
}

// NewCookies creates a cookie manager.
func NewCookies(secure bool) *Cookies {
	return &Cookies{
		secure: secure,
		ttl:    DefaultTTL,
	}
}

// Set stores the token in the session cookie.
func (c *Cookies) Set(w http.ResponseWriter, token Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(c.ttl.Seconds()),
	})
}

// Clear expires the session cookie immediately.
func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// FromRequest returns the token from the request cookie, or "" if absent.
func FromRequest(r *http.Request) Token {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "" // No cookie = no session (not an error)
	}
	return Token(cookie.Value)
}
