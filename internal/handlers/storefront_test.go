package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

const phoneJSON = `{"id":"p1","name":"Phone","brand":"Acme","variants":[{"sku":"P-1","price":"199.9","stock":3,"attributes":[{"name":"Color","value":"red"}]}]}`

func TestHome(t *testing.T) {
	t.Run("lists products", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/products", reply(http.StatusOK, `{"products":[`+phoneJSON+`]}`))

		rr := httptest.NewRecorder()
		env.Storefront.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), `href="/products/p1"`) {
			t.Error("product link missing")
		}
		if !strings.Contains(rr.Body.String(), "from 199.90") {
			t.Error("lowest price missing from the product card")
		}
	})

	t.Run("product without variants has no price", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/products", reply(http.StatusOK, `{"products":[{"id":"p2","name":"Gift card"}]}`))

		rr := httptest.NewRecorder()
		env.Storefront.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		if strings.Contains(rr.Body.String(), `class="price"`) {
			t.Error("a product without variants should not show a price")
		}
	})

	t.Run("catalog down gives empty state", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/products", reply(http.StatusInternalServerError, `{"message":"boom","code":13}`))

		rr := httptest.NewRecorder()
		env.Storefront.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		body := rr.Body.String()
		if !strings.Contains(body, "Could not load products.") || !strings.Contains(body, "No products yet.") {
			t.Error("expected error message and empty state")
		}
	})

	t.Run("cart count for logged-in user", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/products", reply(http.StatusOK, `{"products":[]}`))
		env.Remote.handle("GET /v1/cart", reply(http.StatusOK, `{"items":[{"productId":"p1","quantity":2,"price":"1"},{"productId":"p2","quantity":3,"price":"1"}]}`))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(ctxWithToken(req.Context(), "tok"))
		rr := httptest.NewRecorder()
		env.Storefront.Home(rr, req)

		if !strings.Contains(rr.Body.String(), `<span class="badge">5</span>`) {
			t.Error("cart badge should show 5")
		}
		calls := env.Remote.calls(http.MethodGet, "/v1/cart")
		if len(calls) != 1 || calls[0].Auth != "Bearer tok" {
			t.Errorf("cart calls: %+v", calls)
		}
	})
}

func TestProduct(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantText   string
	}{
		{"found", http.StatusOK, phoneJSON, http.StatusOK, "199.90"},
		{"not found", http.StatusNotFound, `{"message":"product not found","code":5}`, http.StatusNotFound, "Product not found."},
		{"empty body", http.StatusOK, ``, http.StatusNotFound, "Product not found."},
		{"catalog down", http.StatusServiceUnavailable, `{"message":"unavailable","code":14}`, http.StatusBadGateway, "Product not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.Remote.handle("GET /v1/products/p1", reply(tt.status, tt.body))

			req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/products/p1", nil), "id", "p1")
			rr := httptest.NewRecorder()
			env.Storefront.Product(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rr.Code, tt.wantStatus)
			}
			if !strings.Contains(rr.Body.String(), tt.wantText) {
				t.Errorf("body should contain %q", tt.wantText)
			}
		})
	}
}

func TestProduct_AddedFlash(t *testing.T) {
	env := newTestEnv(t)
	env.Remote.handle("GET /v1/products/p1", reply(http.StatusOK, phoneJSON))

	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/products/p1?added=1", nil), "id", "p1")
	rr := httptest.NewRecorder()
	env.Storefront.Product(rr, req)

	if !strings.Contains(rr.Body.String(), "Product added to cart!") {
		t.Error("added flash missing")
	}
}

func TestAddToCart(t *testing.T) {
	t.Run("requires login", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/products/p1", reply(http.StatusOK, phoneJSON))

		rr := httptest.NewRecorder()
		env.Storefront.AddToCart(rr, postForm("/cart/items", url.Values{"productId": {"p1"}, "quantity": {"1"}}))

		if rr.Code != http.StatusUnprocessableEntity {
			t.Errorf("status: got %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "Please log in to add items to your cart.") {
			t.Error("login message missing")
		}
		if len(env.Remote.calls(http.MethodPost, "/v1/cart/items")) != 0 {
			t.Error("order service should not be called without a session")
		}
	})

	t.Run("success redirects with flag", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("POST /v1/cart/items", reply(http.StatusOK, `{}`))

		req := postForm("/cart/items", url.Values{"productId": {"p1"}, "quantity": {"2"}})
		req = req.WithContext(ctxWithToken(req.Context(), "tok"))
		rr := httptest.NewRecorder()
		env.Storefront.AddToCart(rr, req)

		if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/products/p1?added=1" {
			t.Fatalf("got %d to %q", rr.Code, rr.Header().Get("Location"))
		}
		calls := env.Remote.calls(http.MethodPost, "/v1/cart/items")
		if len(calls) != 1 {
			t.Fatalf("got %d cart calls, want 1", len(calls))
		}
		if calls[0].Auth != "Bearer tok" {
			t.Errorf("authorization: got %q", calls[0].Auth)
		}
		var body map[string]any
		if err := json.Unmarshal([]byte(calls[0].Body), &body); err != nil {
			t.Fatal(err)
		}
		if body["productId"] != "p1" || body["quantity"] != float64(2) {
			t.Errorf("request body: %v", body)
		}
	})

	t.Run("service error re-renders product", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/products/p1", reply(http.StatusOK, phoneJSON))
		env.Remote.handle("POST /v1/cart/items", reply(http.StatusConflict, `{"message":"out of stock","code":9}`))

		req := postForm("/cart/items", url.Values{"productId": {"p1"}, "quantity": {"1"}})
		req = req.WithContext(ctxWithToken(req.Context(), "tok"))
		rr := httptest.NewRecorder()
		env.Storefront.AddToCart(rr, req)

		if rr.Code != http.StatusUnprocessableEntity {
			t.Errorf("status: got %d", rr.Code)
		}
		body := rr.Body.String()
		if !strings.Contains(body, "out of stock") || !strings.Contains(body, "Phone") {
			t.Error("expected product page with the server message")
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/products/p1", reply(http.StatusOK, phoneJSON))

		req := postForm("/cart/items", url.Values{"productId": {"p1"}, "quantity": {"0"}})
		req = req.WithContext(ctxWithToken(req.Context(), "tok"))
		rr := httptest.NewRecorder()
		env.Storefront.AddToCart(rr, req)

		if !strings.Contains(rr.Body.String(), "Must be greater than or equal to 1") {
			t.Error("quantity message missing")
		}
		if len(env.Remote.calls(http.MethodPost, "/v1/cart/items")) != 0 {
			t.Error("order service should not be called")
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		env := newTestEnv(t)
		req := postForm("/cart/items", url.Values{"quantity": {"1"}})
		req = req.WithContext(ctxWithToken(req.Context(), "tok"))
		rr := httptest.NewRecorder()
		env.Storefront.AddToCart(rr, req)

		if rr.Code != http.StatusUnprocessableEntity {
			t.Errorf("status: got %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "This field is required") {
			t.Error("required message missing")
		}
	})
}

func TestCart(t *testing.T) {
	t.Run("items and total", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/cart", reply(http.StatusOK, `{"items":[{"productId":"p1","name":"Phone","quantity":2,"price":"10.5"}]}`))

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req = req.WithContext(ctxWithToken(req.Context(), "tok"))
		rr := httptest.NewRecorder()
		env.Storefront.Cart(rr, req)

		body := rr.Body.String()
		if !strings.Contains(body, "Phone") || !strings.Contains(body, "21.00") {
			t.Error("expected item name and total 21.00")
		}
		if len(env.Remote.calls(http.MethodGet, "/v1/cart")) != 1 {
			t.Error("cart should be fetched once")
		}
	})

	t.Run("error shows message", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/cart", reply(http.StatusBadGateway, `not json`))

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req = req.WithContext(ctxWithToken(req.Context(), "tok"))
		rr := httptest.NewRecorder()
		env.Storefront.Cart(rr, req)

		body := rr.Body.String()
		if !strings.Contains(body, "Could not load your cart.") || !strings.Contains(body, "Your cart is empty.") {
			t.Error("expected fallback message and empty cart")
		}
	})
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	env.Remote.handle("GET /v1/users/me", reply(http.StatusOK, `{"id":"u1","name":"Ada","email":"ada@example.com","role":"admin"}`))
	env.Remote.handle("GET /v1/cart", reply(http.StatusOK, `{"items":[]}`))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = req.WithContext(ctxWithToken(req.Context(), "tok"))
	rr := httptest.NewRecorder()
	env.Storefront.Profile(rr, req)

	body := rr.Body.String()
	for _, want := range []string{"Ada", "ada@example.com", "admin", "Open the admin area"} {
		if !strings.Contains(body, want) {
			t.Errorf("profile should contain %q", want)
		}
	}
	calls := env.Remote.calls(http.MethodGet, "/v1/users/me")
	if len(calls) != 1 || calls[0].Auth != "Bearer tok" {
		t.Errorf("profile calls: %+v", calls)
	}
}

func TestProfile_CustomerHasNoAdminLink(t *testing.T) {
	env := newTestEnv(t)
	env.Remote.handle("GET /v1/users/me", reply(http.StatusOK, `{"id":"u2","name":"Bo","email":"bo@example.com","role":"customer"}`))
	env.Remote.handle("GET /v1/cart", reply(http.StatusOK, `{"items":[]}`))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = req.WithContext(ctxWithToken(req.Context(), "tok"))
	rr := httptest.NewRecorder()
	env.Storefront.Profile(rr, req)

	if strings.Contains(rr.Body.String(), "Open the admin area") {
		t.Error("customers should not get the admin link")
	}
}

func TestAPICategories(t *testing.T) {
	env := newTestEnv(t)
	env.Remote.handle("GET /v1/categories", reply(http.StatusOK, `{"categories":[
		{"id":"c3","name":"Tablets","parent_id":"c1"},
		{"id":"c2","name":"Books"},
		{"id":"c4","name":"Phones","parentId":"c1"},
		{"id":"c1","name":"Electronics"},
		{"id":"c5","name":"Lost","parentId":"gone"}
	]}`))

	rr := httptest.NewRecorder()
	env.Storefront.APICategories(rr, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	var resp struct {
		Categories []struct {
			ID string `json:"id"`
		} `json:"categories"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, c := range resp.Categories {
		got = append(got, c.ID)
	}
	want := "c2,c1,c4,c3,c5"
	if strings.Join(got, ",") != want {
		t.Errorf("order: got %v, want %s", got, want)
	}
}

func TestAPICategories_Error(t *testing.T) {
	env := newTestEnv(t)
	env.Remote.handle("GET /v1/categories", reply(http.StatusInternalServerError, `{"message":"db down","code":13}`))

	rr := httptest.NewRecorder()
	env.Storefront.APICategories(rr, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	if rr.Code != http.StatusBadGateway {
		t.Errorf("status: got %d, want 502", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "db down") {
		t.Error("error message missing")
	}
}

func TestAPIProducts(t *testing.T) {
	t.Run("empty body gives empty list", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/products", reply(http.StatusOK, ``))

		rr := httptest.NewRecorder()
		env.Storefront.APIProducts(rr, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d", rr.Code)
		}
		if got := strings.TrimSpace(rr.Body.String()); got != `{"products":[]}` {
			t.Errorf("body: got %s", got)
		}
	})

	t.Run("passes products through", func(t *testing.T) {
		env := newTestEnv(t)
		env.Remote.handle("GET /v1/products", reply(http.StatusOK, `{"products":[`+phoneJSON+`]}`))

		rr := httptest.NewRecorder()
		env.Storefront.APIProducts(rr, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		if !strings.Contains(rr.Body.String(), `"id":"p1"`) {
			t.Error("product missing from response")
		}
	})
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || rr.Header().Get("Content-Type") != "application/json" {
		t.Errorf("got %d %q", rr.Code, rr.Header().Get("Content-Type"))
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("body: got %s", got)
	}
}
