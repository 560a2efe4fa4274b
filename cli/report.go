package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/branchlint/check"
	clierrors "github.com/randalmurphal/branchlint/errors"
	"github.com/randalmurphal/branchlint/notify"
)

// renderResults prints results as text or JSON per the global flags.
func renderResults(w io.Writer, results []*check.Result) error {
	if flagJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	failed := 0
	degraded := 0
	for _, result := range results {
		if !result.Passed {
			failed++
		}
		if result.TicketUnavailable {
			degraded++
		}
		renderResult(w, result)
	}

	if len(results) > 1 || flagQuiet {
		fmt.Fprintf(w, "\n%d checked, %d failed\n", len(results), failed)
	}
	if degraded > 0 {
		fmt.Fprintf(w, "Warning: tracker unreachable, %d name(s) checked for format only\n", degraded)
	}

	return nil
}

func renderResult(w io.Writer, result *check.Result) {
	if result.Passed {
		if flagQuiet {
			return
		}
		fmt.Fprintf(w, "ok   %s (%s)", result.Ref, result.Kind)
		if result.Verdict != nil {
			fmt.Fprintf(w, " (%d%% relevant to %s)", result.Verdict.MatchPercentage, result.TicketID)
		}
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "FAIL %s (%s)\n", result.Ref, result.Kind)
	for _, violation := range result.Violations {
		fmt.Fprintf(w, "     %s: %s\n", violation.Code, violation.Message)
	}
	if result.Verdict != nil && len(result.Verdict.Matched) > 0 {
		fmt.Fprintf(w, "     matched keywords: %v\n", result.Verdict.Matched)
	}
}

// finishRun renders the report, emits the notification event, and maps
// the outcome to an error carrying the right exit code.
func finishRun(cmd *cobra.Command, sess *session, results []*check.Result) error {
	if err := renderResults(os.Stdout, results); err != nil {
		return err
	}

	failed := 0
	degraded := false
	var lookupErr error
	for _, result := range results {
		if !result.Passed {
			failed++
		}
		if result.TicketUnavailable {
			degraded = true
			if lookupErr == nil {
				lookupErr = result.LookupErr
			}
		}
	}

	sendEvent(cmd, sess, results, failed, degraded)

	if failed > 0 {
		return errViolations
	}
	if degraded {
		wrapped := clierrors.WrapLookupError(lookupErr, sess.Settings.JiraURL)
		if sess.Settings.Strict {
			if wrapped != nil && wrapped != lookupErr {
				return wrapped
			}
			return &clierrors.CLIError{
				Err:        clierrors.ErrConnectionFailed,
				Message:    "ticket tracker unreachable and strict mode is on",
				Suggestion: "Retry when the tracker is back, or drop --strict.",
				ExitCode:   clierrors.ExitUnavailable,
			}
		}
		if wrapped != nil && wrapped != lookupErr {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", wrapped)
		}
	}
	return nil
}

func sendEvent(cmd *cobra.Command, sess *session, results []*check.Result, failed int, degraded bool) {
	if _, ok := sess.Notifier.(notify.NopNotifier); ok {
		return
	}

	ref := ""
	if len(results) > 0 {
		ref = results[0].Ref
	}

	eventType := notify.EventCheckPassed
	message := fmt.Sprintf("%d name(s) passed", len(results))
	switch {
	case failed > 0:
		eventType = notify.EventCheckFailed
		message = fmt.Sprintf("%d of %d name(s) failed", failed, len(results))
	case degraded:
		eventType = notify.EventCheckDegraded
		message = "tracker unreachable, format checks only"
	}

	event := notify.NewEvent(eventType, ref, message)
	event.Metadata = map[string]any{
		"checked": len(results),
		"failed":  failed,
	}

	if err := sess.Notifier.Notify(cmd.Context(), event); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
	}
}
