package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"blackshop/internal/api"
	"blackshop/internal/i18n"
	"blackshop/internal/middleware"
	"blackshop/internal/models"
	"blackshop/internal/render"
	"blackshop/internal/session"
)

// Auth groups the login, register and logout handlers.
type Auth struct {
	base
	cookies *session.Cookies
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, client *api.Client, bundle *i18n.Bundle, cookies *session.Cookies) *Auth {
	return &Auth{
		base:    base{renderer: renderer, client: client, bundle: bundle},
		cookies: cookies,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already logged in: go to the storefront.
	if middleware.TokenFromCtx(r.Context()).Valid() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	a.renderLogin(w, r, http.StatusOK, map[string]any{})
}

// LoginSubmit exchanges the credentials for a session token and stores it
// in the session cookie.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	loc := a.loc(r)
	form := loginForm{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	if errs := validateForm(loc, &form); errs != nil {
		a.renderLogin(w, r, http.StatusUnprocessableEntity, map[string]any{
			"Email":       form.Email,
			"FieldErrors": errs,
		})
		return
	}

	token, err := a.client.Login(r.Context(), models.LoginInput{Email: form.Email, Password: form.Password})
	if err != nil {
		a.renderLogin(w, r, http.StatusUnprocessableEntity, map[string]any{
			"Email": form.Email,
			"Error": apiMessage(loc, err, i18n.AuthLoginFailed),
		})
		return
	}
	if !token.Valid() {
		slog.Error("login response without token", "email", form.Email)
		a.renderLogin(w, r, http.StatusBadGateway, map[string]any{
			"Email": form.Email,
			"Error": loc.T(i18n.AuthTokenMissing),
		})
		return
	}

	a.cookies.Set(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// TooManyAttempts is served by the rate limiter in place of a login or
// register submit.
func (a *Auth) TooManyAttempts(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Error": a.loc(r).T(i18n.AuthTooManyAttempts)}
	if strings.HasSuffix(r.URL.Path, "/register") {
		a.renderRegister(w, r, http.StatusTooManyRequests, data)
		return
	}
	a.renderLogin(w, r, http.StatusTooManyRequests, data)
}

// RegisterPage renders the registration form.
func (a *Auth) RegisterPage(w http.ResponseWriter, r *http.Request) {
	a.renderRegister(w, r, http.StatusOK, map[string]any{})
}

// RegisterSubmit creates an account. On success the page shows a link to
// the login form; the user is not logged in automatically.
func (a *Auth) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	loc := a.loc(r)
	form := registerForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	data := map[string]any{"Name": form.Name, "Email": form.Email}

	if errs := validateForm(loc, &form); errs != nil {
		data["FieldErrors"] = errs
		a.renderRegister(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	err := a.client.Register(r.Context(), models.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		data["Error"] = apiMessage(loc, err, i18n.AuthRegisterFailed)
		a.renderRegister(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	slog.Info("user registered", "email", form.Email)
	a.renderRegister(w, r, http.StatusOK, map[string]any{"Success": loc.T(i18n.AuthRegistered)})
}

// Logout clears the session cookie. The token itself is not revoked.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.cookies.Clear(w)
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}

func (a *Auth) renderLogin(w http.ResponseWriter, r *http.Request, status int, data map[string]any) {
	a.renderer.PageStatus(w, r, status, "login", &render.PageData{
		Title:   "login.title",
		Section: "login",
		Data:    data,
	})
}

func (a *Auth) renderRegister(w http.ResponseWriter, r *http.Request, status int, data map[string]any) {
	a.renderer.PageStatus(w, r, status, "register", &render.PageData{
		Title:   "register.title",
		Section: "register",
		Data:    data,
	})
}
