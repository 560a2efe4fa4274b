package cli

import (
	"github.com/spf13/cobra"

	"github.com/randalmurphal/branchlint/check"
)

var rangeCmd = &cobra.Command{
	Use:   "range <rev-range>",
	Short: "Check every commit subject in a revision range",
	Long: `Check every commit subject in a git revision range.

The range uses git syntax. Exempt subjects (merges, reverts, fixups)
are skipped by the convention but still listed in the report.

Examples:
  branchlint range origin/main..HEAD   # Commits on this branch
  branchlint range HEAD~5..            # The last five commits`,
	Args: cobra.ExactArgs(1),
	RunE: runRange,
}

func init() {
	rootCmd.AddCommand(rangeCmd)
}

func runRange(cmd *cobra.Command, args []string) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	commits, err := repo.Commits(args[0])
	if err != nil {
		return err
	}

	results := make([]*check.Result, 0, len(commits))
	for _, commit := range commits {
		results = append(results, sess.Checker.Commit(cmd.Context(), commit.Message()))
	}

	return finishRun(cmd, sess, results)
}
