package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBodyLimit(t *testing.T) {
	limits := map[string]int64{
		"/admin/categories":           16,
		"/admin/products/wizard/":     64,
		"/admin/products/wizard/big/": 128,
	}
	h := BodyLimit(8, limits)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name string
		path string
		size int
		want int
	}{
		{"default cap fits", "/cart/items", 8, http.StatusOK},
		{"default cap exceeded", "/cart/items", 9, http.StatusRequestEntityTooLarge},
		{"category cap", "/admin/categories", 16, http.StatusOK},
		{"category cap exceeded", "/admin/categories", 17, http.StatusRequestEntityTooLarge},
		{"wizard cap", "/admin/products/wizard/d1", 64, http.StatusOK},
		{"wizard cap exceeded", "/admin/products/wizard/d1", 65, http.StatusRequestEntityTooLarge},
		{"longest prefix wins", "/admin/products/wizard/big/x", 100, http.StatusOK},
		{"product list uses default", "/admin/products/new", 9, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(strings.Repeat("x", tt.size)))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Errorf("status: got %d, want %d", rr.Code, tt.want)
			}
		})
	}
}
