package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/randalmurphal/branchlint/errors"
	"github.com/randalmurphal/branchlint/git"
	"github.com/randalmurphal/branchlint/rules"
	"github.com/randalmurphal/branchlint/ticket"
)

var suggestPrefix string

var suggestCmd = &cobra.Command{
	Use:   "suggest <ticket-id>",
	Short: "Suggest a branch name for a ticket",
	Long: `Suggest a branch name that passes the convention, built from the
ticket's summary.

Examples:
  branchlint suggest SHOP-8548
  branchlint suggest SHOP-8548 --prefix=bugfix`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVar(&suggestPrefix, "prefix", "feature", "branch category prefix")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ticketID := args[0]
	if rules.TicketID(ticketID) != ticketID {
		return clierrors.NewUsageError(
			fmt.Sprintf("invalid ticket ID %q", ticketID),
			"Use the PROJECT-123 form, e.g. branchlint suggest SHOP-8548.")
	}

	sess, err := loadSession()
	if err != nil {
		return err
	}

	summary := ""
	if sess.Checker.Tickets != nil {
		summary, err = sess.Checker.Tickets.Summary(cmd.Context(), ticketID)
		switch {
		case err == nil:
		case errors.Is(err, ticket.ErrNotFound):
			return fmt.Errorf("ticket %s does not exist in the tracker", ticketID)
		default:
			wrapped := clierrors.WrapLookupError(err, sess.Settings.JiraURL)
			if clierrors.IsAuthError(wrapped) || clierrors.IsPermissionError(wrapped) {
				return wrapped
			}
			if wrapped != err {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", wrapped)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: tracker unreachable, suggesting without the summary")
		}
	}

	namer := git.DefaultBranchNamer()
	namer.TypePrefix = suggestPrefix

	fmt.Fprintln(cmd.OutOrStdout(), namer.ForTicket(ticketID, summary))
	return nil
}
