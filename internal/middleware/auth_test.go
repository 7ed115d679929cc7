package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"blackshop/internal/session"
)

// okHandler is a simple handler that records whether it was invoked.
func okHandler() (http.Handler, *bool) {
	var called bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return h, &called
}

// ---------- TokenFromCtx ----------

func TestTokenFromCtx(t *testing.T) {
	t.Run("returns token when present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), SessionKey, session.Token("tok"))
		if got := TokenFromCtx(ctx); got != "tok" {
			t.Errorf("got %q, want tok", got)
		}
	})

	t.Run("returns empty when not present", func(t *testing.T) {
		if got := TokenFromCtx(context.Background()); got.Valid() {
			t.Errorf("expected empty token, got %q", got)
		}
	})

	t.Run("returns empty for wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), SessionKey, 42)
		if got := TokenFromCtx(ctx); got.Valid() {
			t.Errorf("expected empty token for wrong type, got %q", got)
		}
	})
}

// ---------- LoadSession ----------

func TestLoadSession(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		want   session.Token
	}{
		{"no cookie", "", ""},
		{"cookie present", "abc123", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got session.Token
			handler := LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = TokenFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("token: got %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------- RequireSession ----------

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		cookie       bool
		wantRedirect bool
	}{
		{"home is public", "/", false, false},
		{"auth root is public", "/auth", false, false},
		{"login is public", "/auth/login", false, false},
		{"register is public", "/auth/register", false, false},
		{"api is public", "/api/categories", false, false},
		{"static is public", "/static/app.css", false, false},
		{"favicon is public", "/favicon.ico", false, false},
		{"health is public", "/health", false, false},
		{"profile needs session", "/profile", false, true},
		{"cart needs session", "/cart", false, true},
		{"admin needs session", "/admin/categories", false, true},
		{"product page needs session", "/products/p1", false, true},
		{"prefix lookalike is not public", "/authx", false, true},
		{"api lookalike is not public", "/apis", false, true},
		{"profile with session", "/profile", true, false},
		{"admin with session", "/admin/products", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, called := okHandler()
			handler := RequireSession(PublicPaths)(inner)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if tt.wantRedirect {
				if rr.Code != http.StatusSeeOther {
					t.Fatalf("status: got %d, want 303", rr.Code)
				}
				if loc := rr.Header().Get("Location"); loc != LoginPath {
					t.Errorf("Location: got %q, want %q", loc, LoginPath)
				}
				if *called {
					t.Error("next handler should not run")
				}
				return
			}
			if !*called {
				t.Errorf("next handler should run, got status %d", rr.Code)
			}
		})
	}
}

func TestRequireSession_EmptyCookieValue(t *testing.T) {
	inner, called := okHandler()
	handler := RequireSession(PublicPaths)(inner)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: ""})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if *called || rr.Code != http.StatusSeeOther {
		t.Errorf("empty cookie should count as no session, got %d", rr.Code)
	}
}

func TestIsPublicPath_CustomList(t *testing.T) {
	allow := []string{"/docs/*"}
	if !IsPublicPath("/docs", allow) || !IsPublicPath("/docs/a/b", allow) {
		t.Error("prefix entry should match itself and descendants")
	}
	if IsPublicPath("/", allow) {
		t.Error("/ is not on the custom list")
	}
}
