package pr

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubProvider implements Provider for GitHub repositories.
type GitHubProvider struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubProvider creates a new GitHub provider.
// token is a personal access token or GitHub App token.
func NewGitHubProvider(token, owner, repo string) (*GitHubProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub: %w", ErrTokenRequired)
	}
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)

	return &GitHubProvider{
		client: client,
		owner:  owner,
		repo:   repo,
	}, nil
}

// NewGitHubProviderFromURL creates a GitHub provider from a remote URL.
// Example: "https://github.com/acme/shop.git"
func NewGitHubProviderFromURL(token, remoteURL string) (*GitHubProvider, error) {
	owner, repo, err := ParseRepoFromURL(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("parse remote URL: %w", err)
	}
	return NewGitHubProvider(token, owner, repo)
}

// GetPR implements Provider.
func (p *GitHubProvider) GetPR(ctx context.Context, id int) (*PullRequest, error) {
	pull, resp, err := p.client.PullRequests.Get(ctx, p.owner, p.repo, id)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: #%d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("get PR: %w", err)
	}
	return prFromGitHub(pull), nil
}

// ListCommits implements Provider.
func (p *GitHubProvider) ListCommits(ctx context.Context, id int) ([]Commit, error) {
	var all []Commit
	opts := &github.ListOptions{PerPage: 100}

	for {
		commits, resp, err := p.client.PullRequests.ListCommits(ctx, p.owner, p.repo, id, opts)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: #%d", ErrNotFound, id)
			}
			return nil, fmt.Errorf("list PR commits: %w", err)
		}

		for _, c := range commits {
			all = append(all, Commit{
				SHA:     c.GetSHA(),
				Message: c.GetCommit().GetMessage(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// prFromGitHub converts a GitHub PR to the common type.
func prFromGitHub(pull *github.PullRequest) *PullRequest {
	state := pull.GetState()
	if pull.GetMerged() {
		state = "merged"
	}
	return &PullRequest{
		ID:        pull.GetNumber(),
		URL:       pull.GetHTMLURL(),
		Title:     pull.GetTitle(),
		Head:      pull.GetHead().GetRef(),
		Base:      pull.GetBase().GetRef(),
		State:     state,
		CreatedAt: pull.GetCreatedAt().Time,
	}
}
