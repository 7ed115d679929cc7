package middleware

import (
	"net/http"

	"blackshop/internal/i18n"
)

const (
	// LangCookieName remembers an explicit language choice.
	LangCookieName = "lang"

	// LangParam switches the language for this and later requests.
	LangParam = "lang"

	langCookieMaxAge = 365 * 24 * 60 * 60
)

// Locale picks the request language and stores its Localizer in the
// context. Precedence: the "lang" query parameter (which is also saved in a
// cookie), then the "lang" cookie, then Accept-Language, then the bundle's
// fallback.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accept := r.Header.Get("Accept-Language")
			if c, err := r.Cookie(LangCookieName); err == nil && c.Value != "" {
				accept = c.Value
			}
			if q := r.URL.Query().Get(LangParam); q != "" {
				accept = q
				tag := bundle.Match(q)
				http.SetCookie(w, &http.Cookie{
					Name:     LangCookieName,
					Value:    tag.String(),
					Path:     "/",
					MaxAge:   langCookieMaxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			loc := bundle.Localizer(bundle.Match(accept))
			next.ServeHTTP(w, r.WithContext(i18n.WithLocalizer(r.Context(), loc)))
		})
	}
}
