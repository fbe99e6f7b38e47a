// Package httpclient builds the *http.Client transports handed to the places
// client: a plain timeout client, a static bearer token client and a client
// backed by Google application default credentials.
package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// PlacesScope is the OAuth2 scope accepted by the Maps Platform APIs.
const PlacesScope = "https://www.googleapis.com/auth/cloud-platform"

// NewDefaultHTTPClient creates a simple HTTP client with a timeout
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// NewOAuthHTTPClient creates an HTTP client that sends token as a bearer
// credential on every request.
func NewOAuthHTTPClient(ctx context.Context, token string, timeout time.Duration) (*http.Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("access token is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := oauth2.NewClient(ctx, ts)
	client.Timeout = timeout
	return client, nil
}

// NewGoogleDefaultHTTPClient creates an HTTP client authorized with the
// application default credentials of the environment.
func NewGoogleDefaultHTTPClient(ctx context.Context, timeout time.Duration, scopes ...string) (*http.Client, error) {
	if len(scopes) == 0 {
		scopes = []string{PlacesScope}
	}

	client, err := google.DefaultClient(ctx, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to find default credentials: %w", err)
	}
	client.Timeout = timeout
	return client, nil
}
