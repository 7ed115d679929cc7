// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the storefront and
// admin pages. Every page is a "content" block executed inside base.html.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"blackshop/internal/i18n"
	"blackshop/internal/middleware"
	"blackshop/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title     string         // message key for the <title> tag and heading
	Section   string         // active navigation section (e.g., "home", "categories")
	LoggedIn  bool           // a session cookie is present
	CSRFToken string         // CSRF token for the hidden form field
	CartCount int            // items in the cart, shown in the header
	Data      map[string]any // page-specific data
	Flashes   []Flash        // one-time notification messages

	loc *i18n.Localizer
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// T translates key in the request language. Templates call it as
// {{.T "nav.home"}}.
func (p *PageData) T(key string, args ...any) string {
	if p.loc == nil {
		return key
	}
	return p.loc.T(key, args...)
}

// Lang returns the html lang attribute.
func (p *PageData) Lang() string {
	if p.loc == nil {
		return "en"
	}
	return p.loc.Lang()
}

// Dir returns the html dir attribute.
func (p *PageData) Dir() string {
	if p.loc == nil {
		return "ltr"
	}
	return p.loc.Dir()
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
	bundle    *i18n.Bundle
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout. bundle
// supplies the localizer for requests that did not pass through the Locale
// middleware.
func New(bundle *i18n.Bundle) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		bundle:    bundle,
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "active"
				}
				return ""
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// indent returns the left padding of a tree row, in rem.
			"indent": func(level int) string {
				return fmt.Sprintf("%.1frem", float64(level)*1.5)
			},
			"price": func(d decimal.Decimal) string {
				return d.StringFixed(2)
			},
			// lowestPrice is the "from" price of a product card, or "" when
			// the product has no variants.
			"lowestPrice": func(p models.Product) string {
				if low, ok := p.LowestPrice(); ok {
					return low.StringFixed(2)
				}
				return ""
			},
			// previewSrc lets a generated JPEG preview through as an image
			// source; html/template would otherwise reject the data: URL.
			"previewSrc": func(s string) template.URL {
				if strings.HasPrefix(s, "data:image/jpeg;base64,") {
					return template.URL(s)
				}
				return ""
			},
			"add": func(a, b int) int {
				return a + b
			},
			// key joins parts into a form field name: key "variant" 0 "sku"
			// gives "variant_0_sku".
			"key": func(parts ...any) string {
				s := make([]string, len(parts))
				for i, p := range parts {
					s[i] = fmt.Sprint(p)
				}
				return strings.Join(s, "_")
			},
		},
	}

	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	// Parse each page template paired with the base layout.
	for _, path := range entries {
		name := strings.TrimPrefix(path, "templates/")
		if name == "base.html" {
			continue
		}
		tmplName := strings.TrimSuffix(name, ".html")

		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			templateFS, "templates/base.html", path,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a page with status 200.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus renders a page with the given status.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	data.CSRFToken = middleware.GetCSRFToken(r)
	data.LoggedIn = middleware.TokenFromCtx(ctx).Valid()
	if data.loc = i18n.FromContext(ctx); data.loc == nil && rn.bundle != nil {
		data.loc = rn.bundle.Default()
	}

	// Render into a buffer so a template error can still become a 500.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
