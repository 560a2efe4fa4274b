package pr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/xanzy/go-gitlab"
)

// GitLabProvider implements Provider for GitLab repositories.
type GitLabProvider struct {
	client    *gitlab.Client
	projectID string // Can be numeric ID or "namespace/project"
}

// NewGitLabProvider creates a new GitLab provider.
// token is a personal access token.
// baseURL is the GitLab instance URL (empty for gitlab.com).
// projectID can be numeric ID or "namespace/project" path.
func NewGitLabProvider(token, baseURL, projectID string) (*GitLabProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("GitLab: %w", ErrTokenRequired)
	}
	if projectID == "" {
		return nil, fmt.Errorf("project ID is required")
	}

	var client *gitlab.Client
	var err error

	if baseURL != "" {
		client, err = gitlab.NewClient(token, gitlab.WithBaseURL(baseURL))
	} else {
		client, err = gitlab.NewClient(token)
	}

	if err != nil {
		return nil, fmt.Errorf("create GitLab client: %w", err)
	}

	return &GitLabProvider{
		client:    client,
		projectID: projectID,
	}, nil
}

// NewGitLabProviderFromURL creates a GitLab provider from a remote URL.
// Example: "https://gitlab.com/namespace/project.git"
func NewGitLabProviderFromURL(token, remoteURL string) (*GitLabProvider, error) {
	owner, repo, err := ParseRepoFromURL(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("parse remote URL: %w", err)
	}

	// Extract base URL for self-hosted instances
	var baseURL string
	if !strings.Contains(remoteURL, "gitlab.com") {
		trimmed := strings.TrimPrefix(remoteURL, "https://")
		trimmed = strings.TrimPrefix(trimmed, "http://")
		parts := strings.Split(trimmed, "/")
		if len(parts) > 0 {
			baseURL = "https://" + parts[0]
		}
	}

	return NewGitLabProvider(token, baseURL, owner+"/"+repo)
}

// GetPR implements Provider. The id is the merge request IID.
func (p *GitLabProvider) GetPR(ctx context.Context, id int) (*PullRequest, error) {
	mr, resp, err := p.client.MergeRequests.GetMergeRequest(p.projectID, id, nil, gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: !%d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("get MR: %w", err)
	}
	return prFromGitLab(mr), nil
}

// ListCommits implements Provider. GitLab returns newest first, so the
// order is reversed to match the Provider contract.
func (p *GitLabProvider) ListCommits(ctx context.Context, id int) ([]Commit, error) {
	var all []Commit
	opts := &gitlab.GetMergeRequestCommitsOptions{PerPage: 100}

	for {
		commits, resp, err := p.client.MergeRequests.GetMergeRequestCommits(
			p.projectID, id, opts, gitlab.WithContext(ctx))
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: !%d", ErrNotFound, id)
			}
			return nil, fmt.Errorf("list MR commits: %w", err)
		}

		for _, c := range commits {
			all = append(all, Commit{SHA: c.ID, Message: c.Message})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	// Oldest first.
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}

	return all, nil
}

// prFromGitLab converts a GitLab MR to the common type.
func prFromGitLab(mr *gitlab.MergeRequest) *PullRequest {
	pull := &PullRequest{
		ID:    mr.IID,
		URL:   mr.WebURL,
		Title: mr.Title,
		Head:  mr.SourceBranch,
		Base:  mr.TargetBranch,
		State: mr.State,
	}
	if mr.CreatedAt != nil {
		pull.CreatedAt = *mr.CreatedAt
	}
	return pull
}
