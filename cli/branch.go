package cli

import (
	"github.com/spf13/cobra"

	"github.com/randalmurphal/branchlint/check"
)

var branchCmd = &cobra.Command{
	Use:   "branch [name]",
	Short: "Check a branch name",
	Long: `Check a branch name against the naming convention and its ticket.

With no argument, checks the currently checked-out branch.

Examples:
  branchlint branch                                  # Check current branch
  branchlint branch feature/SHOP-8548-gift-card-app  # Check a given name
  branchlint branch --offline my-branch              # Format check only`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBranch,
}

func init() {
	rootCmd.AddCommand(branchCmd)
}

func runBranch(cmd *cobra.Command, args []string) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		name, err = repo.CurrentBranch()
		if err != nil {
			return err
		}
	}

	result := sess.Checker.Branch(cmd.Context(), name)
	return finishRun(cmd, sess, []*check.Result{result})
}
