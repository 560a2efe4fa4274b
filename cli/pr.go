package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/branchlint/check"
	clierrors "github.com/randalmurphal/branchlint/errors"
	"github.com/randalmurphal/branchlint/pr"
)

var (
	prRemote string
)

var prCmd = &cobra.Command{
	Use:   "pr <number>",
	Short: "Check a pull request's branch and commits",
	Long: `Check the head branch name and every commit subject of a pull
request (or GitLab merge request).

The provider is detected from the repository's remote URL. Access
tokens are read from GITHUB_TOKEN, GITLAB_TOKEN, or GIT_TOKEN.

Examples:
  branchlint pr 128                  # PR 128 on the origin remote
  branchlint pr 128 --remote=fork    # Use another remote`,
	Args: cobra.ExactArgs(1),
	RunE: runPR,
}

func init() {
	rootCmd.AddCommand(prCmd)
	prCmd.Flags().StringVar(&prRemote, "remote", "origin", "git remote to detect the provider from")
}

func runPR(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil || number <= 0 {
		return clierrors.NewUsageError(
			fmt.Sprintf("invalid pull request number %q", args[0]),
			"Pass the numeric PR/MR number, e.g. branchlint pr 128.")
	}

	sess, err := loadSession()
	if err != nil {
		return err
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	remoteURL, err := repo.RemoteURL(prRemote)
	if err != nil {
		return fmt.Errorf("resolve remote %q: %w", prRemote, err)
	}

	provider, err := pr.ProviderFromRemote(remoteURL)
	if err != nil {
		return err
	}

	pull, err := provider.GetPR(cmd.Context(), number)
	if err != nil {
		return err
	}

	commits, err := provider.ListCommits(cmd.Context(), number)
	if err != nil {
		return err
	}

	results := []*check.Result{
		sess.Checker.Branch(cmd.Context(), pull.Head),
	}
	for _, commit := range commits {
		results = append(results, sess.Checker.Commit(cmd.Context(), commit.Message))
	}

	return finishRun(cmd, sess, results)
}
