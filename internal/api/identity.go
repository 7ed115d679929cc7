package api

import (
	"context"
	"net/http"

	"blackshop/internal/models"
	"blackshop/internal/session"
)

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, in models.RegisterInput) error {
	_, err := c.call(ctx, ServiceIdentity, http.MethodPost, "/auth/register", in, "", nil)
	return err
}

// Login exchanges credentials for a session token. The token is empty if
// the service answered without one.
func (c *Client) Login(ctx context.Context, in models.LoginInput) (session.Token, error) {
	var res models.LoginResult
	if _, err := c.call(ctx, ServiceIdentity, http.MethodPost, "/auth/login", in, "", &res); err != nil {
		return "", err
	}
	return session.Token(res.Token), nil
}

// GetProfile returns the profile of the user the token belongs to.
func (c *Client) GetProfile(ctx context.Context, token session.Token) (*models.Profile, error) {
	var p models.Profile
	ok, err := c.call(ctx, ServiceIdentity, http.MethodGet, "/users/me", nil, token, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}
