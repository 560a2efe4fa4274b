// Package jira provides the slice of the Jira REST API that branchlint
// needs: fetching an issue by key to confirm it exists and to read its
// summary text.
//
// # Authentication
//
// The client supports multiple authentication methods:
//   - API Token (Cloud): Email + API token
//   - Personal Access Token (Server/DC): PAT token
//   - Basic Auth (legacy): Username + password
//   - OAuth 2.0 (Cloud): Bearer access token
//
// # Usage
//
//	cfg := jira.DefaultConfig()
//	cfg.URL = "https://your-domain.atlassian.net"
//	cfg.Auth = jira.AuthConfig{
//		Type:  jira.AuthAPIToken,
//		Email: "you@example.com",
//		Token: "your-api-token",
//	}
//
//	client, err := jira.NewClient(cfg)
//	if err != nil {
//		return err
//	}
//
//	issue, err := client.GetIssue(ctx, "PROJ-123")
//
// # Error Handling
//
// The package uses the httpc error taxonomy so callers can classify
// failures with errors.Is:
//
//	if errors.Is(err, jira.ErrIssueNotFound) {
//		// Ticket doesn't exist
//	}
//	if errors.Is(err, httpc.ErrRateLimited) {
//		// Rate limited, check Retry-After
//	}
package jira
