// Package notify reports lint results to external channels.
//
// Core types:
//   - Notifier: Interface for sending notifications
//   - Event: Notification event with type, message, and metadata
//
// Implementations:
//   - SlackNotifier: Sends notifications to Slack webhooks
//   - WebhookNotifier: Sends notifications to generic webhooks
//   - LogNotifier: Logs notifications (for testing/debugging)
//   - MultiNotifier: Combines multiple notifiers
//   - NopNotifier: No-op notifier (for testing)
//
// Example usage:
//
//	notifier := notify.NewSlackNotifier(webhookURL,
//	    notify.WithSlackChannel("#dev-alerts"),
//	)
//	err := notifier.Notify(ctx, notify.NewEvent(
//	    notify.EventCheckFailed,
//	    "feature/SHOP-8548-user-authentication",
//	    "branch name fails relevance check",
//	))
package notify
