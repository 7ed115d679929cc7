// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"blackshop/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// SessionKey is the context key for the session token.
	SessionKey contextKey = "session"

	// LoginPath is where RequireSession sends visitors without a session.
	LoginPath = "/auth/login"
)

// PublicPaths is the default allow-list of RequireSession. An entry ending
// in "/*" matches every path below that prefix; any other entry matches
// exactly.
var PublicPaths = []string{
	"/",
	"/auth",
	"/auth/*",
	"/api/*",
	"/static/*",
	"/favicon.ico",
	"/health",
}

// LoadSession copies the session token from its cookie into the request
// context. Downstream handlers read it with TokenFromCtx. The token is not
// validated here; the remote services do that on every call.
func LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := session.FromRequest(r); token.Valid() {
			r = r.WithContext(context.WithValue(r.Context(), SessionKey, token))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession redirects requests without a session cookie to the login
// page, except for paths on the allow-list. It checks presence only.
func RequireSession(allow []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsPublicPath(r.URL.Path, allow) || session.FromRequest(r).Valid() {
				next.ServeHTTP(w, r)
				return
			}
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
		})
	}
}

// IsPublicPath reports whether path matches an allow-list entry.
func IsPublicPath(path string, allow []string) bool {
	for _, pattern := range allow {
		if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}

// TokenFromCtx extracts the session token from the request context.
// Returns "" if the visitor has no session.
func TokenFromCtx(ctx context.Context) session.Token {
	token, _ := ctx.Value(SessionKey).(session.Token)
	return token
}
