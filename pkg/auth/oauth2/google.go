package oauth2

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleProvider drives the Google OAuth2 consent flow.
type GoogleProvider struct {
	config *oauth2.Config
}

// NewGoogleProvider creates a Google provider. redirectURL must match
// one registered on the OAuth client, typically
// http://localhost:<port>/auth/google/callback.
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// Name returns "google".
func (p *GoogleProvider) Name() string {
	return "google"
}

// AuthCodeURL builds the consent page URL.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// ExchangeCode swaps the authorization code for Google's access
// token. The refresh token, if any, is deliberately discarded: the
// backend exchange only needs the access token once.
func (p *GoogleProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("oauth2: google code exchange: %w", err)
	}
	if token.AccessToken == "" {
		return "", ErrNoAccessToken
	}
	return token.AccessToken, nil
}

// SetEndpoint overrides the OAuth2 endpoint. Test hook.
func (p *GoogleProvider) SetEndpoint(authURL, tokenURL string) {
	p.config.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
}
