package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/randalmurphal/branchlint/httpc"
)

// Client provides access to the Jira REST API.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	baseURL    string
	apiVersion APIVersion

	// Rate limiting state
	mu        sync.RWMutex
	remaining int
	resetTime time.Time
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Jira client.
func NewClient(cfg *Config, opts ...ClientOption) (*Client, error) {
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}

	timeout := cfg.HTTP.Timeout
	if timeout == 0 {
		timeout = httpc.DefaultTimeout
	}

	c := &Client{
		cfg:     cfg,
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:    cfg.HTTP.MaxIdleConns,
				IdleConnTimeout: cfg.HTTP.IdleConnTimeout,
			},
		},
		apiVersion: cfg.APIVersion,
		remaining:  -1, // Unknown
	}

	if c.apiVersion == "" {
		c.apiVersion = APIVersionV3
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GetIssue retrieves an issue by key.
func (c *Client) GetIssue(ctx context.Context, key string) (*Issue, error) {
	if !ValidateIssueKey(key) {
		return nil, ErrIssueKeyInvalid
	}

	path := c.apiPath("/issue/" + key)
	req, reqErr := c.newRequest(ctx, http.MethodGet, path)
	if reqErr != nil {
		return nil, reqErr
	}

	resp, respErr := c.doWithRetry(req)
	if respErr != nil {
		return nil, respErr
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrIssueNotFound, key)
	}
	if apiErr := c.checkError(resp); apiErr != nil {
		return nil, apiErr
	}

	var issue Issue
	if decodeErr := json.NewDecoder(resp.Body).Decode(&issue); decodeErr != nil {
		return nil, fmt.Errorf("decode issue: %w", decodeErr)
	}

	return &issue, nil
}

// apiPath returns the full API path for the given endpoint.
func (c *Client) apiPath(endpoint string) string {
	return fmt.Sprintf("/rest/api/%s%s", strings.TrimPrefix(string(c.apiVersion), "v"), endpoint)
}

// newRequest creates a new HTTP request with authentication.
func (c *Client) newRequest(ctx context.Context, method, path string) (*http.Request, error) {
	u, parseErr := url.Parse(c.baseURL + path)
	if parseErr != nil {
		return nil, fmt.Errorf("parse url: %w", parseErr)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %w", reqErr)
	}

	req.Header.Set("Accept", "application/json")
	c.setAuth(req)

	return req, nil
}

// setAuth sets the authentication header based on config.
func (c *Client) setAuth(req *http.Request) {
	switch c.cfg.Auth.Type {
	case AuthAPIToken:
		// Cloud: email:api_token base64 encoded
		credentials := c.cfg.Auth.Email + ":" + c.cfg.Auth.Token
		encoded := base64.StdEncoding.EncodeToString([]byte(credentials))
		req.Header.Set("Authorization", "Basic "+encoded)

	case AuthBasic:
		// Server: username:password base64 encoded
		credentials := c.cfg.Auth.Username + ":" + c.cfg.Auth.Password
		encoded := base64.StdEncoding.EncodeToString([]byte(credentials))
		req.Header.Set("Authorization", "Basic "+encoded)

	case AuthPAT, AuthOAuth2:
		req.Header.Set("Authorization", "Bearer "+c.cfg.Auth.Token)
	}
}

// doWithRetry executes a request with retry on rate limiting and
// transient failures.
func (c *Client) doWithRetry(req *http.Request) (*http.Response, error) {
	maxRetries := c.cfg.Retry.MaxRetries
	if maxRetries == 0 {
		maxRetries = httpc.DefaultMaxRetries
	}

	delay := c.cfg.Retry.WaitMin
	if delay == 0 {
		delay = httpc.DefaultRetryWait
	}

	maxDelay := c.cfg.Retry.WaitMax
	if maxDelay == 0 {
		maxDelay = 30 * time.Second
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, doErr := c.httpClient.Do(req.Clone(req.Context()))
		if doErr != nil {
			lastErr = doErr
			if httpc.IsRetryable(doErr) && attempt < maxRetries {
				c.waitForRetry(req.Context(), delay)
				delay = min(delay*2, maxDelay)
				continue
			}
			return nil, doErr
		}

		// Update rate limit state from headers
		c.updateRateLimitState(resp)

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Rate limited - close body and retry
		_ = resp.Body.Close()
		lastErr = httpc.ErrRateLimited

		// Get retry delay from header if available
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, parseErr := strconv.Atoi(retryAfter); parseErr == nil {
				delay = time.Duration(seconds) * time.Second
			}
		}

		if attempt < maxRetries {
			c.waitForRetry(req.Context(), delay)
			delay = min(delay*2, maxDelay)
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// waitForRetry waits for the specified duration or until context is canceled.
func (c *Client) waitForRetry(ctx context.Context, delay time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}

// updateRateLimitState updates rate limit tracking from response headers.
func (c *Client) updateRateLimitState(resp *http.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		if val, parseErr := strconv.Atoi(remaining); parseErr == nil {
			c.remaining = val
		}
	}

	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		if t, parseErr := time.Parse(time.RFC3339, reset); parseErr == nil {
			c.resetTime = t
		}
	}
}

// checkError checks for API errors in the response.
func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return parseAPIError(resp, resp.Request.URL.Path)
}

// RateLimitRemaining returns the remaining rate limit capacity.
// Returns -1 if unknown.
func (c *Client) RateLimitRemaining() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.remaining
}

// APIVersionInUse returns the API version being used.
func (c *Client) APIVersionInUse() APIVersion {
	return c.apiVersion
}
