// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// The remote services are faked with an httptest.Server behind a real
// api.Client; wizard drafts live in memory.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"blackshop/internal/api"
	"blackshop/internal/cache"
	"blackshop/internal/i18n"
	"blackshop/internal/middleware"
	"blackshop/internal/render"
	"blackshop/internal/session"
	"blackshop/internal/wizard"
)

// memDrafts is an in-memory DraftStore. Drafts are stored as JSON so tests
// see the same copy semantics as the Valkey store.
type memDrafts struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func newMemDrafts() *memDrafts {
	return &memDrafts{drafts: make(map[string][]byte)}
}

func (m *memDrafts) Get(_ context.Context, id string) (*wizard.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.drafts[id]
	if !ok {
		return nil, cache.ErrDraftNotFound
	}
	var d wizard.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (m *memDrafts) Save(_ context.Context, d *wizard.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[d.ID] = raw
	return nil
}

func (m *memDrafts) Delete(_ context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
}

func (m *memDrafts) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.drafts)
}

// remote is a fake of the three remote services. Routes use ServeMux
// patterns such as "GET /v1/categories". Every request is recorded.
type remote struct {
	mu       sync.Mutex
	mux      *http.ServeMux
	requests []recorded
}

type recorded struct {
	Method string
	Path   string
	Auth   string
	Body   string
}

func (rm *remote) handle(pattern string, h http.HandlerFunc) {
	rm.mux.HandleFunc(pattern, h)
}

func (rm *remote) calls(method, path string) []recorded {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	var out []recorded
	for _, rec := range rm.requests {
		if rec.Method == method && rec.Path == path {
			out = append(out, rec)
		}
	}
	return out
}

// reply returns a handler that writes status and a JSON body.
func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

// testEnv holds all dependencies for handler tests.
type testEnv struct {
	Remote     *remote
	Client     *api.Client
	Bundle     *i18n.Bundle
	Renderer   *render.Renderer
	Drafts     *memDrafts
	Auth       *Auth
	Storefront *Storefront
	Admin      *Admin
}

// newTestEnv creates a complete test environment with all handler
// dependencies. Unrouted remote calls answer 404 with an error body.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	rm := &remote{mux: http.NewServeMux()}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rm.mu.Lock()
		rm.requests = append(rm.requests, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   string(body),
		})
		rm.mu.Unlock()
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		if _, pattern := rm.mux.Handler(r); pattern == "" {
			reply(http.StatusNotFound, `{"message":"not found","code":5}`)(w, r)
			return
		}
		rm.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")
	client := api.New(api.Config{
		Protocol:     "http",
		CatalogHost:  host,
		IdentityHost: host,
		OrderHost:    host,
	})

	bundle, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	renderer, err := render.New(bundle)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	drafts := newMemDrafts()

	return &testEnv{
		Remote:     rm,
		Client:     client,
		Bundle:     bundle,
		Renderer:   renderer,
		Drafts:     drafts,
		Auth:       NewAuth(renderer, client, bundle, session.NewCookies(false)),
		Storefront: NewStorefront(renderer, client, bundle),
		Admin:      NewAdmin(renderer, client, bundle, nil, drafts, false),
	}
}

// ctxWithToken adds a session token to a context using the middleware key.
func ctxWithToken(ctx context.Context, token session.Token) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, token)
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// postForm builds a urlencoded POST request.
func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
