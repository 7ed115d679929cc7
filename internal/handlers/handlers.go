// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the Black Shop front-end.
// Handlers are grouped by concern (storefront, auth, admin) and receive
// their dependencies through the handler struct. All data comes from the
// remote services through the api client.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"blackshop/internal/api"
	"blackshop/internal/i18n"
	"blackshop/internal/middleware"
	"blackshop/internal/render"
)

// base holds the dependencies every handler group shares.
type base struct {
	renderer *render.Renderer
	client   *api.Client
	bundle   *i18n.Bundle
}

// loc returns the request's localizer, falling back to the configured
// default language when the Locale middleware did not run.
func (b *base) loc(r *http.Request) *i18n.Localizer {
	if l := i18n.FromContext(r.Context()); l != nil {
		return l
	}
	return b.bundle.Default()
}

// cartCount fetches the header cart count. Failures are logged and count
// as an empty cart.
func (b *base) cartCount(r *http.Request) int {
	token := middleware.TokenFromCtx(r.Context())
	if !token.Valid() {
		return 0
	}
	cart, err := b.client.GetCart(r.Context(), token)
	if err != nil {
		slog.Warn("cart count unavailable", "error", err)
		return 0
	}
	return cart.TotalItems()
}

// apiMessage returns the server's message for an application error and the
// localized fallback for anything else.
func apiMessage(loc *i18n.Localizer, err error, fallback string) string {
	if e := api.AsError(err); e.Kind == api.KindApplication && e.Message != "" {
		return e.Message
	}
	return loc.T(fallback)
}

// flash returns a one-element flash list when the query flag is set.
func flash(r *http.Request, param, kind, message string) []render.Flash {
	if r.URL.Query().Get(param) == "" {
		return nil
	}
	return []render.Flash{{Type: kind, Message: message}}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

// Health returns a simple JSON health check response.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
