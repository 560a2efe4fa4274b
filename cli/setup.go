package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/randalmurphal/branchlint/cache"
	"github.com/randalmurphal/branchlint/check"
	"github.com/randalmurphal/branchlint/config"
	clierrors "github.com/randalmurphal/branchlint/errors"
	"github.com/randalmurphal/branchlint/git"
	"github.com/randalmurphal/branchlint/jira"
	"github.com/randalmurphal/branchlint/notify"
	"github.com/randalmurphal/branchlint/ticket"
)

// session holds everything a lint command needs after setup.
type session struct {
	Settings *config.Settings
	Resolved *config.Resolved
	Checker  *check.Checker
	Notifier notify.Notifier
}

// loadSession resolves configuration, applies flag overrides, and wires
// the checker and notifier.
func loadSession() (*session, error) {
	resolver := config.NewResolverForCLIAt(flagConfig)

	flags := map[string]string{}
	if flagThreshold > 0 {
		flags["relevance_threshold"] = strconv.Itoa(flagThreshold)
	}
	if flagOffline {
		flags["offline"] = "true"
	}
	if flagStrict {
		flags["strict"] = "true"
	}

	settings, resolved, err := config.Load(resolver, flags)
	if err != nil {
		return nil, clierrors.NewUsageError(err.Error(),
			"Check your .branchlint.yaml and BRANCHLINT_* environment variables.")
	}

	checker := &check.Checker{
		Rules:     settings.Rules(),
		Relevance: settings.Relevance(),
		Threshold: settings.RelevanceThreshold,
	}

	if !settings.Offline {
		summarizer, err := buildSummarizer(settings)
		if err != nil {
			return nil, err
		}
		checker.Tickets = summarizer
	}

	return &session{
		Settings: settings,
		Resolved: resolved,
		Checker:  checker,
		Notifier: buildNotifier(settings),
	}, nil
}

// buildSummarizer wires the Jira client behind the file cache.
// Returns nil when no tracker is configured; format checks still run.
func buildSummarizer(settings *config.Settings) (ticket.Summarizer, error) {
	jiraCfg := settings.Jira()
	if jiraCfg == nil {
		return nil, nil
	}

	if err := jiraCfg.Validate(); err != nil {
		return nil, clierrors.NewUsageError(
			fmt.Sprintf("invalid tracker configuration: %v", err),
			"Check the jira.* keys in your branchlint config.")
	}

	client, err := jira.NewClient(jiraCfg)
	if err != nil {
		return nil, fmt.Errorf("create tracker client: %w", err)
	}

	summarizer := ticket.NewJiraSummarizer(client)

	store, err := cache.NewStore(settings.Cache())
	if err != nil {
		// Cache failure degrades to uncached lookups.
		fmt.Fprintf(os.Stderr, "Warning: summary cache disabled: %v\n", err)
		return summarizer, nil
	}

	return ticket.NewCached(summarizer, store), nil
}

// buildNotifier assembles the configured notification channels.
func buildNotifier(settings *config.Settings) notify.Notifier {
	var notifiers []notify.Notifier

	if settings.SlackWebhook != "" {
		var opts []notify.SlackOption
		if settings.SlackChannel != "" {
			opts = append(opts, notify.WithSlackChannel(settings.SlackChannel))
		}
		notifiers = append(notifiers, notify.NewSlackNotifier(settings.SlackWebhook, opts...))
	}
	if settings.WebhookURL != "" {
		notifiers = append(notifiers, notify.NewWebhookNotifier(settings.WebhookURL, nil))
	}

	switch len(notifiers) {
	case 0:
		return notify.NopNotifier{}
	case 1:
		return notifiers[0]
	default:
		return notify.NewMultiNotifier(notifiers...)
	}
}

// openRepo opens the git repository at the current directory.
func openRepo() (*git.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	repo, err := git.NewContext(cwd)
	if err != nil {
		return nil, clierrors.NewNotInGitRepoError()
	}
	return repo, nil
}
