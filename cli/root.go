package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clierrors "github.com/randalmurphal/branchlint/errors"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	flagConfig    string
	flagJSON      bool
	flagQuiet     bool
	flagOffline   bool
	flagStrict    bool
	flagThreshold int
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// errViolations signals that checks ran and at least one failed. The
// report has already been printed, so Execute only maps the exit code.
var errViolations = &clierrors.CLIError{
	Message:  "checks failed",
	ExitCode: clierrors.ExitViolations,
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "branchlint",
	Short: "Lint branch names and commit subjects against their tickets",
	Long: `branchlint checks that branch names and commit subjects follow the
team convention and actually relate to the ticket they reference.

A name like feature/SHOP-8548-create-gift-card-restriction-app is
validated for format (prefix, ticket ID, slug), the ticket is looked
up in the tracker, and the name is scored against the keywords of the
ticket summary. Names that drift from their ticket fail the check.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return clierrors.ExitOK
	}

	// Violation reports are already printed by the commands.
	if !errors.Is(err, errViolations) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}

	return clierrors.ExitCodeFor(err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "",
		"config file (default: .branchlint.yaml in the git root)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false,
		"output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false,
		"only print failing checks")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false,
		"skip ticket lookups, format checks only")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false,
		"fail when the tracker is unreachable instead of degrading")
	rootCmd.PersistentFlags().IntVar(&flagThreshold, "threshold", 0,
		"relevance pass threshold in percent (overrides config)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("branchlint %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}
