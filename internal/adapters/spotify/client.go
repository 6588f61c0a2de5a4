// Package spotify resolves fight song audio tracks against the Spotify Web API.
package spotify

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/ports"
)

const (
	DefaultBaseURL  = "https://api.spotify.com/v1"
	DefaultTokenURL = "https://accounts.spotify.com/api/token"
	embedURLFormat  = "https://open.spotify.com/embed/track/%s"
)

// Client is an HTTP client for the Spotify adapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retry      retryPolicy
}

// compile-time interface assertion
var _ ports.TrackProvider = (*Client)(nil)

// NewClient constructs a new Spotify client. httpClient should already carry
// credentials (see NewAuthClient); retry limits come from the environment.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		retry:      retryPolicyFromEnv(),
	}
}

// NewAuthClient returns an *http.Client that fetches and refreshes app tokens
// with the client-credentials grant.
func NewAuthClient(ctx context.Context, clientID, clientSecret, tokenURL string) *http.Client {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	return cfg.Client(ctx)
}
