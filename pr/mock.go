package pr

import "context"

// MockProvider is a test double for Provider. Unset funcs return
// ErrNotFound.
type MockProvider struct {
	GetPRFunc       func(ctx context.Context, id int) (*PullRequest, error)
	ListCommitsFunc func(ctx context.Context, id int) ([]Commit, error)
}

func (m *MockProvider) GetPR(ctx context.Context, id int) (*PullRequest, error) {
	if m.GetPRFunc != nil {
		return m.GetPRFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (m *MockProvider) ListCommits(ctx context.Context, id int) ([]Commit, error) {
	if m.ListCommitsFunc != nil {
		return m.ListCommitsFunc(ctx, id)
	}
	return nil, ErrNotFound
}
