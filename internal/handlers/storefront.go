package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"blackshop/internal/api"
	"blackshop/internal/category"
	"blackshop/internal/i18n"
	"blackshop/internal/middleware"
	"blackshop/internal/models"
	"blackshop/internal/render"
)

// Storefront groups the customer-facing pages: catalog, product, cart and
// profile, plus the small JSON endpoints.
type Storefront struct {
	base
}

// NewStorefront creates a new Storefront handler group.
func NewStorefront(renderer *render.Renderer, client *api.Client, bundle *i18n.Bundle) *Storefront {
	return &Storefront{base: base{renderer: renderer, client: client, bundle: bundle}}
}

// Home renders the product list. A failing catalog gives an empty state,
// never a 500.
func (s *Storefront) Home(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	products, err := s.client.ListProducts(r.Context())
	if err != nil {
		slog.Error("list products failed", "error", err)
		data["Error"] = s.loc(r).T(i18n.ProductsLoadFailed)
	}
	data["Products"] = products

	s.renderer.Page(w, r, "home", &render.PageData{
		Title:     "home.title",
		Section:   "home",
		CartCount: s.cartCount(r),
		Data:      data,
	})
}

// Product renders a single product with its add-to-cart form.
func (s *Storefront) Product(w http.ResponseWriter, r *http.Request) {
	loc := s.loc(r)
	product, status := s.loadProduct(r, chi.URLParam(r, "id"))
	if product == nil {
		s.renderer.PageStatus(w, r, status, "error", &render.PageData{
			Title: "error.title",
			Data:  map[string]any{"Message": loc.T(i18n.ProductNotFound)},
		})
		return
	}

	s.renderer.Page(w, r, "product", &render.PageData{
		Title:     "product.title",
		Section:   "home",
		CartCount: s.cartCount(r),
		Data:      map[string]any{"Product": product},
		Flashes:   flash(r, "added", "success", loc.T(i18n.CartAdded)),
	})
}

// loadProduct returns the product, or nil and the status of the error
// page: 404 when the catalog does not know it, 502 otherwise.
func (s *Storefront) loadProduct(r *http.Request, id string) (*models.Product, int) {
	product, err := s.client.GetProduct(r.Context(), id)
	switch {
	case errors.Is(err, api.ErrNotFound):
		return nil, http.StatusNotFound
	case err != nil:
		slog.Error("get product failed", "id", id, "error", err)
		return nil, http.StatusBadGateway
	case product == nil:
		return nil, http.StatusNotFound
	}
	return product, http.StatusOK
}

// AddToCart adds a product to the cart and redirects back to the product
// page. Failures re-render the product page with the message.
func (s *Storefront) AddToCart(w http.ResponseWriter, r *http.Request) {
	loc := s.loc(r)
	form := cartItemForm{ProductID: strings.TrimSpace(r.FormValue("productId")), Quantity: 1}
	if q := strings.TrimSpace(r.FormValue("quantity")); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			n = 0
		}
		form.Quantity = n
	}

	token := middleware.TokenFromCtx(r.Context())
	var message string
	switch errs := validateForm(loc, &form); {
	case !token.Valid():
		message = loc.T(i18n.CartLoginRequired)
	case errs != nil:
		message = errs["quantity"]
		if m, ok := errs["productId"]; ok {
			message = m
		}
	default:
		err := s.client.AddCartItem(r.Context(), models.AddCartItemInput{
			ProductID: form.ProductID,
			Quantity:  form.Quantity,
		}, token)
		if err == nil {
			http.Redirect(w, r, "/products/"+url.PathEscape(form.ProductID)+"?added=1", http.StatusSeeOther)
			return
		}
		message = apiMessage(loc, err, i18n.CartAddFailed)
	}

	if form.ProductID == "" {
		s.renderer.PageStatus(w, r, http.StatusUnprocessableEntity, "error", &render.PageData{
			Title: "error.title",
			Data:  map[string]any{"Message": message},
		})
		return
	}
	product, status := s.loadProduct(r, form.ProductID)
	if product == nil {
		s.renderer.PageStatus(w, r, status, "error", &render.PageData{
			Title: "error.title",
			Data:  map[string]any{"Message": message},
		})
		return
	}
	s.renderer.PageStatus(w, r, http.StatusUnprocessableEntity, "product", &render.PageData{
		Title:     "product.title",
		Section:   "home",
		CartCount: s.cartCount(r),
		Data:      map[string]any{"Product": product, "Error": message},
	})
}

// Cart lists the items in the user's cart.
func (s *Storefront) Cart(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	cart, err := s.client.GetCart(r.Context(), middleware.TokenFromCtx(r.Context()))
	if err != nil {
		slog.Error("get cart failed", "error", err)
		data["Error"] = apiMessage(s.loc(r), err, i18n.CartLoadFailed)
		cart = &models.Cart{}
	}
	data["Cart"] = cart

	s.renderer.Page(w, r, "cart", &render.PageData{
		Title:     "cart.title",
		Section:   "cart",
		CartCount: cart.TotalItems(),
		Data:      data,
	})
}

// Profile shows the logged-in user's profile.
func (s *Storefront) Profile(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	profile, err := s.client.GetProfile(r.Context(), middleware.TokenFromCtx(r.Context()))
	if err != nil {
		slog.Error("get profile failed", "error", err)
		data["Error"] = apiMessage(s.loc(r), err, i18n.ProfileLoadFailed)
	}
	data["Profile"] = profile

	s.renderer.Page(w, r, "profile", &render.PageData{
		Title:     "profile.title",
		Section:   "profile",
		CartCount: s.cartCount(r),
		Data:      data,
	})
}

// APICategories returns the categories as a flat list, grouped by parent
// and ordered by name in the request language.
func (s *Storefront) APICategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.client.ListCategories(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": api.AsError(err).Message})
		return
	}
	report := category.GroupAndSortReport(category.FlattenList(cats), s.loc(r).Tag())
	logOrphans(report)
	writeJSON(w, http.StatusOK, map[string]any{"categories": report.Categories})
}

// APIProducts passes the catalog's product list through.
func (s *Storefront) APIProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.client.ListProducts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": api.AsError(err).Message})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}
