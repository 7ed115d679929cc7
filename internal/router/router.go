// Package router sets up all HTTP routes and middleware chains for the
// Black Shop front-end. Every request passes the same global stack; the
// session allow-list decides which routes need a login.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"blackshop/internal/handlers"
	"blackshop/internal/i18n"
	"blackshop/internal/middleware"
	"blackshop/web"
)

// formBodyLimit caps the bodies of the plain forms (login, cart, ...).
const formBodyLimit = 1 << 20

// Options carries what the middleware stack needs besides the handlers.
type Options struct {
	Bundle *i18n.Bundle
	// Limiter guards the login and register submits. It may be nil.
	Limiter *middleware.RateLimiter
	// SecureCookies marks the CSRF cookie Secure (production).
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(opts Options, storefront *handlers.Storefront, auth *handlers.Auth, admin *handlers.Admin) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Locale(opts.Bundle))
	r.Use(middleware.LoadSession)
	r.Use(middleware.RequireSession(middleware.PublicPaths))
	r.Use(middleware.BodyLimit(formBodyLimit, map[string]int64{
		"/admin/products/wizard/": handlers.WizardBodyLimit,
		"/admin/categories":       handlers.CategoryBodyLimit,
	}))
	r.Use(middleware.NewCSRF(opts.SecureCookies))

	r.Get("/health", handlers.Health)

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("router: static assets missing: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/favicon.svg", http.StatusMovedPermanently)
	})

	// Storefront
	r.Get("/", storefront.Home)
	r.Get("/products/{id}", storefront.Product)
	r.Post("/cart/items", storefront.AddToCart)
	r.Get("/cart", storefront.Cart)
	r.Get("/profile", storefront.Profile)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", storefront.APICategories)
		r.Get("/products", storefront.APIProducts)
	})

	// Auth pages, reachable without a session.
	r.Route("/auth", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		})
		r.Get("/login", auth.LoginPage)
		r.Get("/register", auth.RegisterPage)
		r.Post("/logout", auth.Logout)

		r.Group(func(r chi.Router) {
			if opts.Limiter != nil {
				opts.Limiter.OnLimit(http.HandlerFunc(auth.TooManyAttempts))
				r.Use(opts.Limiter.Middleware)
			}
			r.Post("/login", auth.LoginSubmit)
			r.Post("/register", auth.RegisterSubmit)
		})
	})

	// Admin area. Any logged-in user may enter; the remote services decide
	// what the token is allowed to do.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", admin.Categories)
			r.Post("/", admin.CategoryCreate)
			r.Post("/{id}/delete", admin.CategoryDelete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", admin.Products)
			r.Post("/new", admin.WizardNew)
			r.Get("/wizard/{id}", admin.Wizard)
			r.Post("/wizard/{id}", admin.WizardAction)
			r.Post("/wizard/{id}/cancel", admin.WizardCancel)
		})
	})

	return r
}
