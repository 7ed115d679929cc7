package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blackshop/internal/session"
)

func TestLoginPage(t *testing.T) {
	env := newTestEnv(t)

	t.Run("renders form", func(t *testing.T) {
		rr := httptest.NewRecorder()
		env.Auth.LoginPage(rr, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), `action="/auth/login"`) {
			t.Error("login form missing")
		}
	})

	t.Run("logged in redirects home", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
		req = req.WithContext(ctxWithToken(req.Context(), "tok"))
		rr := httptest.NewRecorder()
		env.Auth.LoginPage(rr, req)
		if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/" {
			t.Errorf("got %d to %q, want 303 to /", rr.Code, rr.Header().Get("Location"))
		}
	})
}

func TestLoginSubmit_Success(t *testing.T) {
	env := newTestEnv(t)
	env.Remote.handle("POST /v1/auth/login", reply(http.StatusOK, `{"token":"abc123"}`))

	rr := httptest.NewRecorder()
	env.Auth.LoginSubmit(rr, postForm("/auth/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"secret"},
	}))

	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/" {
		t.Fatalf("got %d to %q, want 303 to /", rr.Code, rr.Header().Get("Location"))
	}

	var c *http.Cookie
	for _, ck := range rr.Result().Cookies() {
		if ck.Name == session.CookieName {
			c = ck
		}
	}
	if c == nil {
		t.Fatal("session cookie not set")
	}
	if c.Value != "abc123" {
		t.Errorf("cookie value: got %q", c.Value)
	}
	if !c.HttpOnly || c.SameSite != http.SameSiteStrictMode || c.Path != "/" || c.MaxAge != 86400 {
		t.Errorf("cookie attributes: %+v", c)
	}

	calls := env.Remote.calls(http.MethodPost, "/v1/auth/login")
	if len(calls) != 1 || !strings.Contains(calls[0].Body, `"email":"ada@example.com"`) {
		t.Errorf("login calls: %+v", calls)
	}
}

func TestLoginSubmit_Failures(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		status     int
		body       string
		wantStatus int
		wantText   string
		wantCalls  int
	}{
		{
			name:       "invalid email skips the service",
			form:       url.Values{"email": {"nope"}, "password": {"x"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantText:   "Invalid email format",
		},
		{
			name:       "missing password",
			form:       url.Values{"email": {"ada@example.com"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantText:   "This field is required",
		},
		{
			name:       "server message shown inline",
			form:       url.Values{"email": {"ada@example.com"}, "password": {"bad"}},
			status:     http.StatusUnauthorized,
			body:       `{"message":"invalid credentials","code":16}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantText:   "invalid credentials",
			wantCalls:  1,
		},
		{
			name:       "unparsable error falls back",
			form:       url.Values{"email": {"ada@example.com"}, "password": {"bad"}},
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantStatus: http.StatusUnprocessableEntity,
			wantText:   "Failed to login.",
			wantCalls:  1,
		},
		{
			name:       "token missing",
			form:       url.Values{"email": {"ada@example.com"}, "password": {"ok"}},
			status:     http.StatusOK,
			body:       `{}`,
			wantStatus: http.StatusBadGateway,
			wantText:   "Token not received from server.",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.status != 0 {
				env.Remote.handle("POST /v1/auth/login", reply(tt.status, tt.body))
			}

			rr := httptest.NewRecorder()
			env.Auth.LoginSubmit(rr, postForm("/auth/login", tt.form))

			if rr.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rr.Code, tt.wantStatus)
			}
			if !strings.Contains(rr.Body.String(), tt.wantText) {
				t.Errorf("body should contain %q", tt.wantText)
			}
			for _, c := range rr.Result().Cookies() {
				if c.Name == session.CookieName {
					t.Error("no session cookie expected on failure")
				}
			}
			if got := len(env.Remote.calls(http.MethodPost, "/v1/auth/login")); got != tt.wantCalls {
				t.Errorf("login calls: got %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestRegisterSubmit(t *testing.T) {
	t.Run("success shows login link", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("POST /v1/auth/register", reply(http.StatusCreated, ``))

		rr := httptest.NewRecorder()
		env.Auth.RegisterSubmit(rr, postForm("/auth/register", url.Values{
			"name":     {"Ada"},
			"email":    {"ada@example.com"},
			"password": {"secret1"},
		}))

		body := rr.Body.String()
		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d", rr.Code)
		}
		if !strings.Contains(body, "Registration successful.") {
			t.Error("success message missing")
		}
		if strings.Contains(body, `action="/auth/register"`) {
			t.Error("form should be replaced by the success message")
		}
	})

	t.Run("server error", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("POST /v1/auth/register", reply(http.StatusConflict, `{"message":"email already registered","code":6}`))

		rr := httptest.NewRecorder()
		env.Auth.RegisterSubmit(rr, postForm("/auth/register", url.Values{
			"name":     {"Ada"},
			"email":    {"ada@example.com"},
			"password": {"secret1"},
		}))

		if rr.Code != http.StatusUnprocessableEntity {
			t.Errorf("status: got %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "email already registered") {
			t.Error("server message missing")
		}
	})

	t.Run("short password", func(t *testing.T) {
		env := newTestEnv(t)
		rr := httptest.NewRecorder()
		env.Auth.RegisterSubmit(rr, postForm("/auth/register", url.Values{
			"name":     {"Ada"},
			"email":    {"ada@example.com"},
			"password": {"123"},
		}))
		if !strings.Contains(rr.Body.String(), "Must be at least 6 characters") {
			t.Error("password length message missing")
		}
		if len(env.Remote.calls(http.MethodPost, "/v1/auth/register")) != 0 {
			t.Error("service should not be called for an invalid form")
		}
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	rr := httptest.NewRecorder()
	env.Auth.Logout(rr, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/auth/login" {
		t.Errorf("got %d to %q", rr.Code, rr.Header().Get("Location"))
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != session.CookieName || cookies[0].MaxAge != -1 {
		t.Errorf("session cookie should be expired: %+v", cookies)
	}
}

func TestTooManyAttempts(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/auth/login", "/auth/register"} {
		t.Run(path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			env.Auth.TooManyAttempts(rr, httptest.NewRequest(http.MethodPost, path, nil))
			if rr.Code != http.StatusTooManyRequests {
				t.Errorf("status: got %d, want 429", rr.Code)
			}
			if !strings.Contains(rr.Body.String(), `action="`+path+`"`) {
				t.Errorf("should re-render the %s form", path)
			}
		})
	}
}
