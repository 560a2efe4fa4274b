package jira

import (
	"regexp"
	"strings"
)

// Issue represents a Jira issue.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Fields IssueFields `json:"fields"`
}

// IssueFields contains the issue fields branchlint reads.
type IssueFields struct {
	Summary   string     `json:"summary"`
	Status    *Status    `json:"status,omitempty"`
	IssueType *IssueType `json:"issuetype,omitempty"`
	Project   *Project   `json:"project,omitempty"`
	Labels    []string   `json:"labels,omitempty"`
}

// Status represents an issue status.
type Status struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IssueType represents an issue type in Jira.
type IssueType struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subtask bool   `json:"subtask"`
}

// Project represents a Jira project.
type Project struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// SummaryText returns the issue summary with surrounding whitespace
// stripped.
func (i *Issue) SummaryText() string {
	return strings.TrimSpace(i.Fields.Summary)
}

// issueKeyRegex validates Jira issue keys (e.g., PROJ-123).
var issueKeyRegex = regexp.MustCompile(`^[A-Z][A-Z0-9]*-\d+$`)

// ValidateIssueKey validates a Jira issue key format.
func ValidateIssueKey(key string) bool {
	return issueKeyRegex.MatchString(key)
}
