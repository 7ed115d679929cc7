// Package api is the HTTP client for the remote Black Shop services
// (catalog, identity, order). Every call sends and receives JSON, bypasses
// caches, and returns failures as a structured *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"blackshop/internal/session"
)

// Service names one of the remote backends.
type Service string

const (
	ServiceCatalog  Service = "catalog"
	ServiceIdentity Service = "identity"
	ServiceOrder    Service = "order"
)

// Config holds the protocol and per-service host settings.
type Config struct {
	Protocol     string // "http" or "https"; defaults to "http"
	CatalogHost  string
	IdentityHost string
	OrderHost    string
}

// Client calls the remote services.
type Client struct {
	cfg  Config
	http *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client. No request timeout is set; calls are bounded by the
// caller's context.
func New(cfg Config, opts ...Option) *Client {
	if cfg.Protocol == "" {
		cfg.Protocol = "http"
	}
	c := &Client{cfg: cfg, http: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns "{protocol}://{host}/v1" for the service, or a config
// error if that service's host is not set.
func (c *Client) BaseURL(svc Service) (string, error) {
	var host string
	switch svc {
	case ServiceCatalog:
		host = c.cfg.CatalogHost
	case ServiceIdentity:
		host = c.cfg.IdentityHost
	case ServiceOrder:
		host = c.cfg.OrderHost
	default:
		return "", configError(fmt.Sprintf("invalid service name %q", svc))
	}
	if host == "" {
		return "", configError(fmt.Sprintf("%s API host is not configured", svc))
	}
	return fmt.Sprintf("%s://%s/v1", c.cfg.Protocol, strings.TrimRight(host, "/")), nil
}

// MissingHosts lists the services whose host is not configured.
func (c *Client) MissingHosts() []Service {
	var missing []Service
	for _, svc := range []Service{ServiceCatalog, ServiceIdentity, ServiceOrder} {
		if _, err := c.BaseURL(svc); err != nil {
			missing = append(missing, svc)
		}
	}
	return missing
}

// Do performs one request against svc. body is JSON-encoded when non-nil.
// token, when valid, is sent as a bearer credential. It returns the raw
// response body, or nil for an empty body.
func (c *Client) Do(ctx context.Context, svc Service, method, path string, body any, token session.Token) (json.RawMessage, error) {
	base, err := c.BaseURL(svc)
	if err != nil {
		slog.Error("api call failed", "service", svc, "method", method, "path", path, "error", err)
		return nil, err
	}
	url := base + path

	raw, err := c.do(ctx, method, url, body, token)
	if err != nil {
		apiErr := AsError(err)
		slog.Error("api call failed",
			"method", method,
			"url", url,
			"kind", apiErr.Kind.String(),
			"code", apiErr.Code.String(),
			"status", apiErr.Status,
			"error", apiErr.Message,
		)
		return nil, apiErr
	}
	return raw, nil
}

func (c *Client) do(ctx context.Context, method, url string, body any, token session.Token) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if token.Valid() {
		req.Header.Set("Authorization", "Bearer "+string(token))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp.StatusCode, respBody)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}
	if !json.Valid(respBody) {
		return nil, fmt.Errorf("invalid JSON response body")
	}
	return json.RawMessage(respBody), nil
}

// decodeError turns a non-2xx response into *Error. A body that is not a
// JSON object (including null) yields the generic code-0, status-0 error.
func decodeError(status int, body []byte) error {
	var eb errorBody
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return transportError(fmt.Errorf("non-object error response (status %d)", status))
	}
	if err := json.Unmarshal(body, &eb); err != nil {
		return transportError(fmt.Errorf("unparsable error response (status %d)", status))
	}

	msg := eb.Message
	if msg == "" {
		msg = defaultMessage
	}
	code := CodeUnknown
	if eb.Code != nil {
		code = Code(*eb.Code)
	}
	details := eb.Details
	if details == nil {
		details = []any{}
	}
	return &Error{
		Kind:    KindApplication,
		Message: msg,
		Code:    code,
		Details: details,
		Status:  status,
	}
}

// call performs a request and decodes a non-empty response into out.
// It reports whether a body was present.
func (c *Client) call(ctx context.Context, svc Service, method, path string, body any, token session.Token, out any) (bool, error) {
	raw, err := c.Do(ctx, svc, method, path, body, token)
	if err != nil {
		return false, err
	}
	if raw == nil || out == nil {
		return raw != nil, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		slog.Error("api call failed", "service", svc, "method", method, "path", path, "error", err)
		return true, transportError(fmt.Errorf("decode %s %s response: %w", method, path, err))
	}
	return true, nil
}
