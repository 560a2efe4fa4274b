package jira

import (
	"time"
)

// AuthType represents the type of authentication to use.
type AuthType string

// Authentication types supported by the Jira client.
const (
	AuthAPIToken AuthType = "api_token" // Cloud: email + API token
	AuthOAuth2   AuthType = "oauth2"    // Cloud: OAuth 2.0 bearer token
	AuthBasic    AuthType = "basic"     // Server: username + password
	AuthPAT      AuthType = "pat"       // Server/DC: Personal Access Token
)

// APIVersion represents the Jira REST API version.
type APIVersion string

// API versions supported by the Jira REST API.
const (
	APIVersionV2 APIVersion = "v2" // Server / Data Center
	APIVersionV3 APIVersion = "v3" // Cloud
)

// Config holds the configuration for the Jira client.
type Config struct {
	// URL is the base URL of the Jira instance.
	// For Cloud: https://your-domain.atlassian.net
	// For Server: https://jira.your-company.com
	URL string `yaml:"url"`

	// APIVersion selects the REST API version.
	// "v3" for Cloud (default), "v2" for Server/DC.
	APIVersion APIVersion `yaml:"api_version"`

	// Auth contains authentication configuration.
	Auth AuthConfig `yaml:"auth"`

	// HTTP contains HTTP client configuration.
	HTTP HTTPConfig `yaml:"http"`

	// Retry contains retry and rate limiting configuration.
	Retry RetryConfig `yaml:"retry"`
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	// Type is the authentication method to use.
	Type AuthType `yaml:"type"`

	// Email is required for api_token auth (Cloud).
	Email string `yaml:"email"`

	// Token is the API token (Cloud), PAT (Server/DC), or OAuth2
	// access token.
	Token string `yaml:"token"`

	// Username is required for basic auth.
	Username string `yaml:"username"`

	// Password is required for basic auth.
	Password string `yaml:"password"`
}

// HTTPConfig holds HTTP client configuration.
type HTTPConfig struct {
	// Timeout is the request timeout.
	Timeout time.Duration `yaml:"timeout"`

	// MaxIdleConns is the maximum number of idle connections.
	MaxIdleConns int `yaml:"max_idle_conns"`

	// IdleConnTimeout is how long to keep idle connections open.
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout"`
}

// RetryConfig holds retry configuration.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts.
	MaxRetries int `yaml:"max_retries"`

	// WaitMin is the minimum wait between retries.
	WaitMin time.Duration `yaml:"wait_min"`

	// WaitMax is the maximum wait between retries.
	WaitMax time.Duration `yaml:"wait_max"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIVersion: APIVersionV3,
		HTTP: HTTPConfig{
			Timeout:         30 * time.Second,
			MaxIdleConns:    10,
			IdleConnTimeout: 90 * time.Second,
		},
		Retry: RetryConfig{
			MaxRetries: 3,
			WaitMin:    1 * time.Second,
			WaitMax:    30 * time.Second,
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrConfigURLRequired
	}

	if c.Auth.Type == "" {
		return ErrConfigAuthTypeRequired
	}

	switch c.Auth.Type {
	case AuthAPIToken:
		if c.Auth.Email == "" || c.Auth.Token == "" {
			return ErrConfigAPITokenAuth
		}
	case AuthBasic:
		if c.Auth.Username == "" || c.Auth.Password == "" {
			return ErrConfigBasicAuth
		}
	case AuthPAT, AuthOAuth2:
		if c.Auth.Token == "" {
			return ErrConfigTokenAuth
		}
	default:
		return ErrConfigAuthTypeInvalid
	}

	switch c.APIVersion {
	case "", APIVersionV2, APIVersionV3:
	default:
		return ErrConfigAPIVersionInvalid
	}

	return nil
}
