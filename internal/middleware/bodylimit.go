package middleware

import (
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// BodyLimit caps request bodies before anything reads them. A path under
// one of the prefixes in limits gets that cap (longest prefix wins); every
// other path gets def.
func BodyLimit(def int64, limits map[string]int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fallback := chimw.RequestSize(def)(next)
		capped := make(map[string]http.Handler, len(limits))
		for prefix, n := range limits {
			capped[prefix] = chimw.RequestSize(n)(next)
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h, best := fallback, -1
			for prefix, limited := range capped {
				if len(prefix) > best && strings.HasPrefix(r.URL.Path, prefix) {
					h, best = limited, len(prefix)
				}
			}
			h.ServeHTTP(w, r)
		})
	}
}
