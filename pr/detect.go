package pr

import (
	"fmt"
	"os"
	"strings"
)

// DetectProvider determines the provider platform from a git remote URL.
// Returns "github", "gitlab", or an error for unrecognized hosts.
func DetectProvider(remoteURL string) (string, error) {
	switch {
	case strings.Contains(remoteURL, "github.com"):
		return "github", nil
	case strings.Contains(remoteURL, "gitlab"):
		return "gitlab", nil
	default:
		return "", fmt.Errorf("%w: cannot detect provider from %q", ErrUnknownProvider, remoteURL)
	}
}

// ParseRepoFromURL extracts the owner and repo name from a remote URL.
// Handles both SSH (git@host:owner/repo.git) and HTTPS forms.
func ParseRepoFromURL(remoteURL string) (owner, repo string, err error) {
	url := strings.TrimSuffix(remoteURL, ".git")

	if strings.HasPrefix(url, "git@") {
		// git@github.com:owner/repo
		_, path, found := strings.Cut(url, ":")
		if !found {
			return "", "", fmt.Errorf("invalid SSH remote URL: %q", remoteURL)
		}
		url = path
	} else {
		url = strings.TrimPrefix(url, "https://")
		url = strings.TrimPrefix(url, "http://")
		// Drop the host, keep the path.
		if i := strings.Index(url, "/"); i >= 0 {
			url = url[i+1:]
		}
	}

	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("cannot parse owner/repo from %q", remoteURL)
	}

	// Self-hosted GitLab allows nested groups; the repo is the last
	// segment and the owner is everything before it.
	repo = parts[len(parts)-1]
	owner = strings.Join(parts[:len(parts)-1], "/")
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("cannot parse owner/repo from %q", remoteURL)
	}

	return owner, repo, nil
}

// ProviderFromRemote builds a Provider for the platform hosting remoteURL,
// reading the access token from the environment. GITHUB_TOKEN and
// GITLAB_TOKEN are checked per platform, with GIT_TOKEN as a fallback
// for both.
func ProviderFromRemote(remoteURL string) (Provider, error) {
	platform, err := DetectProvider(remoteURL)
	if err != nil {
		return nil, err
	}

	switch platform {
	case "github":
		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			token = os.Getenv("GIT_TOKEN")
		}
		if token == "" {
			return nil, fmt.Errorf("GitHub: %w (set GITHUB_TOKEN)", ErrTokenRequired)
		}
		return NewGitHubProviderFromURL(token, remoteURL)
	case "gitlab":
		token := os.Getenv("GITLAB_TOKEN")
		if token == "" {
			token = os.Getenv("GIT_TOKEN")
		}
		if token == "" {
			return nil, fmt.Errorf("GitLab: %w (set GITLAB_TOKEN)", ErrTokenRequired)
		}
		return NewGitLabProviderFromURL(token, remoteURL)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, platform)
	}
}
