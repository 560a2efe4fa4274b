package pr

import (
	"context"
	"errors"
	"testing"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "github https",
			url:  "https://github.com/owner/repo.git",
			want: "github",
		},
		{
			name: "github ssh",
			url:  "git@github.com:owner/repo.git",
			want: "github",
		},
		{
			name: "gitlab https",
			url:  "https://gitlab.com/owner/repo.git",
			want: "gitlab",
		},
		{
			name: "self-hosted gitlab",
			url:  "https://gitlab.example.com/group/repo.git",
			want: "gitlab",
		},
		{
			name:    "unknown host",
			url:     "https://bitbucket.org/owner/repo.git",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectProvider(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DetectProvider(%q) expected error, got %q", tt.url, got)
				}
				if !errors.Is(err, ErrUnknownProvider) {
					t.Errorf("expected ErrUnknownProvider, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectProvider(%q) failed: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("DetectProvider(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestParseRepoFromURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "https with .git",
			url:       "https://github.com/octocat/hello.git",
			wantOwner: "octocat",
			wantRepo:  "hello",
		},
		{
			name:      "https without .git",
			url:       "https://github.com/octocat/hello",
			wantOwner: "octocat",
			wantRepo:  "hello",
		},
		{
			name:      "ssh form",
			url:       "git@gitlab.com:group/project.git",
			wantOwner: "group",
			wantRepo:  "project",
		},
		{
			name:      "nested gitlab groups",
			url:       "https://gitlab.example.com/org/team/project.git",
			wantOwner: "org/team",
			wantRepo:  "project",
		},
		{
			name:    "missing path",
			url:     "https://github.com/",
			wantErr: true,
		},
		{
			name:    "bare host",
			url:     "https://github.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepoFromURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRepoFromURL(%q) expected error, got %s/%s", tt.url, owner, repo)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepoFromURL(%q) failed: %v", tt.url, err)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("ParseRepoFromURL(%q) = %s/%s, want %s/%s",
					tt.url, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestMockProviderDefaults(t *testing.T) {
	m := &MockProvider{}

	ctx := context.Background()
	if _, err := m.GetPR(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPR with no func should return ErrNotFound, got %v", err)
	}
	if _, err := m.ListCommits(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("ListCommits with no func should return ErrNotFound, got %v", err)
	}
}
