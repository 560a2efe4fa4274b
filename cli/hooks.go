package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var hooksForce bool

// commitMsgHook is installed as .git/hooks/commit-msg. Git passes the
// message file path as $1.
const commitMsgHook = `#!/bin/sh
# Installed by branchlint. Validates the commit subject before commit.
exec branchlint commit --quiet "$1"
`

var installHooksCmd = &cobra.Command{
	Use:   "install-hooks",
	Short: "Install the commit-msg git hook",
	Long: `Install a commit-msg hook that runs branchlint on every commit
message in this repository.

Examples:
  branchlint install-hooks
  branchlint install-hooks --force   # Overwrite an existing hook`,
	Args: cobra.NoArgs,
	RunE: runInstallHooks,
}

func init() {
	rootCmd.AddCommand(installHooksCmd)
	installHooksCmd.Flags().BoolVar(&hooksForce, "force", false, "overwrite an existing hook")
}

func runInstallHooks(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	gitDir, err := repo.GitDir()
	if err != nil {
		return err
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "commit-msg")
	if _, err := os.Stat(hookPath); err == nil && !hooksForce {
		return fmt.Errorf("%s already exists, re-run with --force to overwrite", hookPath)
	}

	if err := os.WriteFile(hookPath, []byte(commitMsgHook), 0o755); err != nil {
		return fmt.Errorf("write hook: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %s\n", hookPath)
	return nil
}
