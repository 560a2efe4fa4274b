package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/branchlint/config"
	clierrors "github.com/randalmurphal/branchlint/errors"
)

var (
	configSetGlobal   bool
	configUnsetGlobal bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the branchlint configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resolved configuration values and their sources",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one resolved configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Save a configuration value",
	Long: `Save a configuration value to the local .branchlint.yaml, or to
~/.config/branchlint/config.yaml with --global.

Examples:
  branchlint config set relevance_threshold 50
  branchlint config set jira.url https://example.atlassian.net --global`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a saved configuration value",
	Long: `Remove a key from the local .branchlint.yaml, or from
~/.config/branchlint/config.yaml with --global. The key falls back to
its default or to lower-precedence sources.

Examples:
  branchlint config unset relevance_threshold
  branchlint config unset jira.url --global`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigUnset,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)

	configSetCmd.Flags().BoolVar(&configSetGlobal, "global", false,
		"save to the global config instead of the repository's")
	configUnsetCmd.Flags().BoolVar(&configUnsetGlobal, "global", false,
		"remove from the global config instead of the repository's")
}

func runConfigList(cmd *cobra.Command, args []string) error {
	resolver := config.NewResolverForCLIAt(flagConfig)
	resolved := resolver.Resolve()

	keys := resolved.Keys()
	sort.Strings(keys)

	w := cmd.OutOrStdout()
	for _, key := range keys {
		value, source := resolved.GetWithSource(key)
		if key == "jira.token" && value != "" {
			value = "(set)"
		}
		fmt.Fprintf(w, "%-22s %-10s %s\n", key, "("+source+")", value)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	resolver := config.NewResolverForCLIAt(flagConfig)
	resolved := resolver.Resolve()

	value, source := resolved.GetWithSource(args[0])
	if source == "" {
		return clierrors.NewUsageError(
			fmt.Sprintf("unknown config key %q", args[0]),
			"Run 'branchlint config list' to see the available keys.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	sc := config.SaveConfig{
		GlobalConfigDir: config.GlobalConfigDir,
		LocalConfigName: config.LocalConfigName,
		ValidKeys:       config.ValidKeys,
	}

	if configSetGlobal {
		if err := sc.SaveGlobal(key, value); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s in the global config\n", key)
		return nil
	}

	resolver := config.NewResolverForCLIAt(flagConfig)
	if resolver.GitRoot() == "" {
		return clierrors.NewNotInGitRepoError()
	}

	if err := sc.SaveLocal(resolver.GitRoot(), key, value); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", key, config.LocalConfigName)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	key := args[0]

	sc := config.SaveConfig{
		GlobalConfigDir: config.GlobalConfigDir,
		LocalConfigName: config.LocalConfigName,
		ValidKeys:       config.ValidKeys,
	}

	if configUnsetGlobal {
		if err := sc.DeleteGlobalKey(key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from the global config\n", key)
		return nil
	}

	resolver := config.NewResolverForCLIAt(flagConfig)
	if resolver.GitRoot() == "" {
		return clierrors.NewNotInGitRepoError()
	}

	if err := sc.DeleteLocalKey(resolver.GitRoot(), key); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", key, config.LocalConfigName)
	return nil
}
