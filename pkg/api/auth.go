package api

import (
	"context"
	"errors"
)

// ErrMalformedAuthResponse is returned when a 2xx auth response is
// missing the user or the access token.
var ErrMalformedAuthResponse = errors.New("api: auth response missing user or token")

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp AuthResponse
	if err := c.post(ctx, "/auth/login/", "", body, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil || resp.Tokens.Access == "" {
		return nil, ErrMalformedAuthResponse
	}
	return &resp, nil
}

// LoginWithGoogle exchanges a Google OAuth access token for an
// Edu2Job session.
func (c *Client) LoginWithGoogle(ctx context.Context, accessToken string) (*AuthResponse, error) {
	body := map[string]string{"access_token": accessToken}

	var resp AuthResponse
	if err := c.post(ctx, "/auth/google/", "", body, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil || resp.Tokens.Access == "" {
		return nil, ErrMalformedAuthResponse
	}
	return &resp, nil
}

// Register creates an account. The backend logs the new user in
// immediately, so the response carries tokens like a login does.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var resp AuthResponse
	if err := c.post(ctx, "/auth/register/", "", body, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil || resp.Tokens.Access == "" {
		return nil, ErrMalformedAuthResponse
	}
	return &resp, nil
}
