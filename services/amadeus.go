package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

var ErrMissingCredentials = errors.New("amadeus client id and secret are required")

// ProviderError is a non-200 answer from the Amadeus token endpoint.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("amadeus rejected credentials (%d): %s", e.StatusCode, e.Message)
}

// TokenInfo is the token metadata safe to return to callers.
type TokenInfo struct {
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
	Scope     string `json:"scope"`

	accessToken string
}

// ─── Amadeus Client ───────────────────────────────────────────────────────────

type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	accessToken  string
	tokenExpiry  time.Time
	mu           sync.Mutex
	httpClient   *http.Client
}

func NewAmadeusClient(clientID, clientSecret, baseURL string) *AmadeusClient {
	return &AmadeusClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Configured reports whether credentials were supplied at startup.
func (c *AmadeusClient) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// Source labels which Amadeus environment the client talks to.
func (c *AmadeusClient) Source() string {
	if strings.Contains(c.baseURL, "test.api.amadeus.com") {
		return "amadeus_test"
	}
	return "amadeus"
}

// ─── OAuth2 Token ─────────────────────────────────────────────────────────────

func (c *AmadeusClient) requestToken(ctx context.Context, clientID, clientSecret string) (*TokenInfo, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error contacting amadeus: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result struct {
		AccessToken      string `json:"access_token"`
		TokenType        string `json:"token_type"`
		ExpiresIn        int    `json:"expires_in"`
		Scope            string `json:"scope"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("invalid response from amadeus token endpoint: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := result.ErrorDescription
		if msg == "" {
			msg = result.Error
		}
		if msg == "" {
			msg = string(body)
		}
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}

	return &TokenInfo{
		TokenType:   result.TokenType,
		ExpiresIn:   result.ExpiresIn,
		Scope:       result.Scope,
		accessToken: result.AccessToken,
	}, nil
}

// CheckCredentials requests a token to verify a client id/secret pair. Empty
// arguments fall back to the configured credentials. Only token metadata is
// returned.
func (c *AmadeusClient) CheckCredentials(ctx context.Context, clientID, clientSecret string) (*TokenInfo, error) {
	if clientID == "" {
		clientID = c.clientID
	}
	if clientSecret == "" {
		clientSecret = c.clientSecret
	}
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}
	return c.requestToken(ctx, clientID, clientSecret)
}

func (c *AmadeusClient) refreshToken(ctx context.Context) error {
	info, err := c.requestToken(ctx, c.clientID, c.clientSecret)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.accessToken = info.accessToken
	c.tokenExpiry = time.Now().Add(time.Duration(info.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

// Token returns the configured client's access token, refreshing it 30s
// before expiry.
func (c *AmadeusClient) Token(ctx context.Context) (string, error) {
	if !c.Configured() {
		return "", ErrMissingCredentials
	}

	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}
