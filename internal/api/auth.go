// ABOUTME: Authentication client for the storefront API
// ABOUTME: Normalizes login responses so callers see one token field

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// AuthClient issues login requests against the auth endpoint.
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAuthClient creates an auth client for the given base URL.
func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse covers both token field variants the server has used.
type loginResponse struct {
	User
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

// Login posts credentials to /auth/login.
//
// An application-level rejection (bad credentials, any non-2xx status)
// comes back as a LoginResult with Error set and a nil error. Only
// transport failures and unparseable bodies return a Go error.
func (c *AuthClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("invalid response from server: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := decoded.Message
		if msg == "" {
			msg = "Login failed"
		}
		return &LoginResult{Error: msg}, nil
	}

	token := decoded.Token
	if token == "" {
		token = decoded.AccessToken
	}

	user := decoded.User
	return &LoginResult{User: &user, Token: token}, nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *AuthClient) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to server at %s: %w", c.baseURL, err)
}
