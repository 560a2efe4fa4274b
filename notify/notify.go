package notify

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// EventType represents the type of lint event.
type EventType string

// Event type constants.
const (
	EventCheckPassed   EventType = "check_passed"
	EventCheckFailed   EventType = "check_failed"
	EventCheckDegraded EventType = "check_degraded"
)

// Severity constants for notification events.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Event describes a lint run result for notification.
type Event struct {
	Type      EventType      `json:"type"`
	RunID     string         `json:"run_id"`
	Repo      string         `json:"repo,omitempty"`
	Ref       string         `json:"ref"`
	Message   string         `json:"message"`
	Severity  string         `json:"severity"` // SeverityInfo, SeverityWarning, SeverityError
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewEvent creates an event with a generated run ID and the current time.
func NewEvent(eventType EventType, ref, message string) Event {
	return Event{
		Type:      eventType,
		RunID:     NewRunID(),
		Ref:       ref,
		Message:   message,
		Severity:  severityForType(eventType),
		Timestamp: time.Now(),
	}
}

// NewRunID generates a unique run identifier.
func NewRunID() string {
	id, err := gonanoid.New(12)
	if err != nil {
		// Extremely unlikely; fall back to a timestamp-based ID.
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return id
}

func severityForType(eventType EventType) string {
	switch eventType {
	case EventCheckFailed:
		return SeverityError
	case EventCheckDegraded:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// Notifier sends notifications about lint events.
type Notifier interface {
	// Notify sends a notification. Implementations should handle errors
	// gracefully (log, don't crash).
	Notify(ctx context.Context, event Event) error
}
