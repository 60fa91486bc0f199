// Package identity obtains access tokens from the platform's managed
// identity endpoint. No secrets are configured; authorization is ambient.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const (
	defaultEndpoint = "http://169.254.169.254/metadata/identity/oauth2/token"
	apiVersion      = "2018-02-01"

	// Tokens within this window of expiry are refreshed eagerly.
	expirySkew = 2 * time.Minute
)

// TokenCredential yields a bearer token scoped to a resource URI.
type TokenCredential interface {
	Token(ctx context.Context, resource string) (string, error)
}

// ManagedIdentityCredential requests tokens from the instance metadata
// service. Tokens are cached per resource until close to expiry; the cache
// is an optimization only, every call may hit the endpoint.
type ManagedIdentityCredential struct {
	endpoint string
	client   *http.Client

	mu     sync.Mutex
	tokens map[string]cachedToken
}

type cachedToken struct {
	value     string
	expiresAt time.Time
}

type Option func(*ManagedIdentityCredential)

// WithEndpoint overrides the metadata endpoint, used in tests.
func WithEndpoint(endpoint string) Option {
	return func(c *ManagedIdentityCredential) {
		c.endpoint = endpoint
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *ManagedIdentityCredential) {
		c.client = client
	}
}

func NewManagedIdentityCredential(opts ...Option) *ManagedIdentityCredential {
	c := &ManagedIdentityCredential{
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		tokens:   make(map[string]cachedToken),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in,string"`
}

func (c *ManagedIdentityCredential) Token(ctx context.Context, resource string) (string, error) {
	c.mu.Lock()
	cached, ok := c.tokens[resource]
	c.mu.Unlock()

	if ok && time.Until(cached.expiresAt) > expirySkew {
		return cached.value, nil
	}

	token, expiresIn, err := c.requestToken(ctx, resource)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.tokens[resource] = cachedToken{
		value:     token,
		expiresAt: time.Now().Add(time.Duration(expiresIn) * time.Second),
	}
	c.mu.Unlock()

	return token, nil
}

func (c *ManagedIdentityCredential) requestToken(ctx context.Context, resource string) (string, int64, error) {
	query := url.Values{
		"api-version": {apiVersion},
		"resource":    {resource},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Metadata", "true")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", 0, fmt.Errorf("failed to decode token response: %w", err)
	}

	if body.AccessToken == "" {
		return "", 0, fmt.Errorf("token endpoint returned empty token")
	}

	return body.AccessToken, body.ExpiresIn, nil
}

// StaticTokenCredential returns a fixed token, used in tests and local runs.
type StaticTokenCredential string

func (s StaticTokenCredential) Token(_ context.Context, _ string) (string, error) {
	return string(s), nil
}
