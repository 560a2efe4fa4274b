// Package config provides hierarchical configuration resolution for the
// branchlint CLI.
//
// This package supports layered configuration with clear precedence:
//  1. Command-line flags (highest priority)
//  2. Environment variables (BRANCHLINT_*)
//  3. Local config (.branchlint.yaml in git root)
//  4. Global config (~/.config/branchlint/config.yaml)
//  5. Built-in defaults (lowest priority)
//
// # Basic Usage
//
//	resolver := config.NewResolverForCLI()
//	settings, resolved, err := config.Load(resolver, nil)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(settings.RelevanceThreshold)       // 30
//	fmt.Println(resolved.Source("relevance_threshold")) // "default"
//
// # Environment Variables
//
// Environment variables are detected using the BRANCHLINT_ prefix.
// Dots in keys map to underscores:
//
//	BRANCHLINT_RELEVANCE_THRESHOLD=50  # sets "relevance_threshold"
//	BRANCHLINT_JIRA_URL=https://...    # sets "jira.url"
//
// # Config Files
//
// YAML files may nest keys; nested maps flatten to dotted keys:
//
//	project_keys: [SHOP, PAY]
//	jira:
//	  url: https://example.atlassian.net
//	  email: dev@example.com
//
// # Config Sources
//
// Each resolved value tracks where it came from: "default", "global",
// "local", "env", or "flag".
package config
