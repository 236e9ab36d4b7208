// Package oauth2 runs the local half of the Google login: the consent
// redirect and the code exchange. The resulting access token is handed
// to the backend, which owns the actual account exchange.
package oauth2

import (
	"context"
	"errors"
)

var (
	// ErrNoAccessToken is returned when the provider's token response
	// lacks an access token.
	ErrNoAccessToken = errors.New("oauth2: token response has no access token")
)

// Provider is an OAuth2 identity provider the client can log in with.
type Provider interface {
	// Name is the provider's short name ("google").
	Name() string

	// AuthCodeURL builds the consent page URL carrying the given
	// CSRF state.
	AuthCodeURL(state string) string

	// ExchangeCode swaps an authorization code for the provider's
	// access token.
	ExchangeCode(ctx context.Context, code string) (string, error)
}
