package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/randalmurphal/branchlint/cache"
	"github.com/randalmurphal/branchlint/check"
	"github.com/randalmurphal/branchlint/jira"
	"github.com/randalmurphal/branchlint/relevance"
	"github.com/randalmurphal/branchlint/rules"
)

// Configuration constants for the branchlint CLI.
const (
	EnvPrefix       = "BRANCHLINT_"
	GlobalConfigDir = "branchlint"
	LocalConfigName = ".branchlint.yaml"
)

// Keys recognized in branchlint config files.
var ValidKeys = []string{
	"project_keys",
	"prefixes",
	"min_keyword_length",
	"max_keywords",
	"partial_prefix_len",
	"relevance_threshold",
	"max_subject_length",
	"stoplist_extra",
	"offline",
	"strict",
	"jira.url",
	"jira.email",
	"jira.token",
	"jira.api_version",
	"cache.dir",
	"cache.ttl",
	"notify.slack_webhook",
	"notify.slack_channel",
	"notify.webhook_url",
}

// Defaults returns the built-in default values.
func Defaults() map[string]string {
	return map[string]string{
		"prefixes":            strings.Join(relevance.DefaultPrefixes, ","),
		"min_keyword_length":  strconv.Itoa(relevance.DefaultMinKeywordLength),
		"max_keywords":        strconv.Itoa(relevance.DefaultMaxKeywords),
		"partial_prefix_len":  strconv.Itoa(relevance.DefaultPartialPrefixLen),
		"relevance_threshold": strconv.Itoa(check.DefaultThreshold),
		"max_subject_length":  strconv.Itoa(rules.DefaultMaxSubjectLength),
		"jira.api_version":    string(jira.APIVersionV3),
		"cache.ttl":           cache.DefaultTTL.String(),
		"offline":             "false",
		"strict":              "false",
	}
}

// Settings is the typed view of the resolved configuration.
type Settings struct {
	ProjectKeys        []string
	Prefixes           []string
	MinKeywordLength   int
	MaxKeywords        int
	PartialPrefixLen   int
	RelevanceThreshold int
	MaxSubjectLength   int
	StoplistExtra      []string
	Offline            bool
	Strict             bool

	JiraURL        string
	JiraEmail      string
	JiraToken      string
	JiraAPIVersion string

	CacheDir string
	CacheTTL time.Duration

	SlackWebhook string
	SlackChannel string
	WebhookURL   string
}

// NewResolverForCLI creates the standard branchlint resolver.
func NewResolverForCLI() *Resolver {
	return NewResolver(ResolverConfig{
		EnvPrefix:       EnvPrefix,
		GlobalConfigDir: GlobalConfigDir,
		LocalConfigName: LocalConfigName,
		Defaults:        Defaults(),
		ValidKeys:       ValidKeys,
	})
}

// NewResolverForCLIAt is NewResolverForCLI with an explicit config file
// replacing the discovered .branchlint.yaml.
func NewResolverForCLIAt(configPath string) *Resolver {
	if configPath == "" {
		return NewResolverForCLI()
	}

	globalPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		globalPath = filepath.Join(home, ".config", GlobalConfigDir, "config.yaml")
	}

	return NewResolverWithPaths(ResolverConfig{
		EnvPrefix: EnvPrefix,
		Defaults:  Defaults(),
		ValidKeys: ValidKeys,
	}, globalPath, configPath)
}

// Load resolves the configuration hierarchy and parses it into Settings.
// flags holds command-line overrides keyed by config key; empty values
// are ignored.
func Load(resolver *Resolver, flags map[string]string) (*Settings, *Resolved, error) {
	resolved := resolver.ResolveWithFlags(flags)

	s := &Settings{}
	var err error

	s.ProjectKeys = splitList(resolved.Get("project_keys"))
	s.Prefixes = splitList(resolved.Get("prefixes"))
	s.StoplistExtra = splitList(resolved.Get("stoplist_extra"))

	if s.MinKeywordLength, err = parseInt(resolved, "min_keyword_length"); err != nil {
		return nil, nil, err
	}
	if s.MaxKeywords, err = parseInt(resolved, "max_keywords"); err != nil {
		return nil, nil, err
	}
	if s.PartialPrefixLen, err = parseInt(resolved, "partial_prefix_len"); err != nil {
		return nil, nil, err
	}
	if s.RelevanceThreshold, err = parseInt(resolved, "relevance_threshold"); err != nil {
		return nil, nil, err
	}
	if s.RelevanceThreshold < 0 || s.RelevanceThreshold > 100 {
		return nil, nil, fmt.Errorf("relevance_threshold must be 0-100, got %d", s.RelevanceThreshold)
	}
	if s.MaxSubjectLength, err = parseInt(resolved, "max_subject_length"); err != nil {
		return nil, nil, err
	}
	if s.Offline, err = parseBool(resolved, "offline"); err != nil {
		return nil, nil, err
	}
	if s.Strict, err = parseBool(resolved, "strict"); err != nil {
		return nil, nil, err
	}

	s.JiraURL = resolved.Get("jira.url")
	s.JiraEmail = resolved.Get("jira.email")
	s.JiraToken = resolved.Get("jira.token")
	s.JiraAPIVersion = resolved.Get("jira.api_version")

	s.CacheDir = resolved.Get("cache.dir")
	if ttl := resolved.Get("cache.ttl"); ttl != "" {
		s.CacheTTL, err = time.ParseDuration(ttl)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid cache.ttl %q: %w", ttl, err)
		}
	}

	s.SlackWebhook = resolved.Get("notify.slack_webhook")
	s.SlackChannel = resolved.Get("notify.slack_channel")
	s.WebhookURL = resolved.Get("notify.webhook_url")

	return s, resolved, nil
}

// Relevance builds the keyword extraction config from the settings.
func (s *Settings) Relevance() relevance.Config {
	cfg := relevance.Config{
		MinKeywordLength: s.MinKeywordLength,
		MaxKeywords:      s.MaxKeywords,
		PartialPrefixLen: s.PartialPrefixLen,
		Prefixes:         s.Prefixes,
	}
	if len(s.StoplistExtra) > 0 {
		cfg.Stoplist = relevance.ExtendedStoplist(s.StoplistExtra)
	}
	return cfg
}

// Rules builds the format convention config from the settings.
func (s *Settings) Rules() rules.Config {
	return rules.Config{
		Prefixes:         s.Prefixes,
		ProjectKeys:      s.ProjectKeys,
		MaxSubjectLength: s.MaxSubjectLength,
	}
}

// Jira builds the tracker client config from the settings.
// Returns nil when no tracker URL is configured.
func (s *Settings) Jira() *jira.Config {
	if s.JiraURL == "" {
		return nil
	}

	cfg := jira.DefaultConfig()
	cfg.URL = s.JiraURL
	if s.JiraAPIVersion != "" {
		cfg.APIVersion = jira.APIVersion(s.JiraAPIVersion)
	}

	if s.JiraEmail != "" {
		cfg.Auth = jira.AuthConfig{
			Type:  jira.AuthAPIToken,
			Email: s.JiraEmail,
			Token: s.JiraToken,
		}
	} else {
		cfg.Auth = jira.AuthConfig{
			Type:  jira.AuthPAT,
			Token: s.JiraToken,
		}
	}

	return cfg
}

// Cache builds the summary cache config from the settings.
func (s *Settings) Cache() cache.StoreConfig {
	return cache.StoreConfig{
		Dir: s.CacheDir,
		TTL: s.CacheTTL,
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseInt(resolved *Resolved, key string) (int, error) {
	value := resolved.Get(key)
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", key, value)
	}
	return n, nil
}

func parseBool(resolved *Resolved, key string) (bool, error) {
	value := resolved.Get(key)
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: must be true or false", key, value)
	}
	return b, nil
}
