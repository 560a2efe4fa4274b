package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/branchlint/check"
	"github.com/randalmurphal/branchlint/git"
)

var commitCmd = &cobra.Command{
	Use:   "commit [message|file]",
	Short: "Check a commit subject",
	Long: `Check a commit subject against the convention and its ticket.

The argument is either a commit message or a path to a message file.
Files are read the way the commit-msg hook receives them: comment lines
are stripped before checking. With no argument, checks the subject of
the HEAD commit.

Examples:
  branchlint commit "SHOP-8548: restrict gift cards per user"
  branchlint commit .git/COMMIT_EDITMSG   # From the commit-msg hook
  branchlint commit                       # Check HEAD`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommit,
}

func init() {
	rootCmd.AddCommand(commitCmd)
}

func runCommit(cmd *cobra.Command, args []string) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}

	message, err := commitMessage(args)
	if err != nil {
		return err
	}

	result := sess.Checker.Commit(cmd.Context(), message)
	return finishRun(cmd, sess, []*check.Result{result})
}

func commitMessage(args []string) (string, error) {
	if len(args) == 0 {
		repo, err := openRepo()
		if err != nil {
			return "", err
		}
		commits, err := repo.Commits("-1")
		if err != nil {
			return "", err
		}
		if len(commits) == 0 {
			return "", fmt.Errorf("repository has no commits")
		}
		return commits[0].Message(), nil
	}

	arg := args[0]
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("read message file: %w", err)
		}
		return git.StripComments(string(data)), nil
	}

	return arg, nil
}
