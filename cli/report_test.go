package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/branchlint/check"
	"github.com/randalmurphal/branchlint/config"
	clierrors "github.com/randalmurphal/branchlint/errors"
	"github.com/randalmurphal/branchlint/notify"
	"github.com/randalmurphal/branchlint/relevance"
	"github.com/randalmurphal/branchlint/rules"
)

func passingResult() *check.Result {
	return &check.Result{
		Ref:      "feature/SHOP-1-gift-card-app",
		Kind:     check.KindBranch,
		TicketID: "SHOP-1",
		Verdict:  &relevance.Verdict{MatchPercentage: 80},
		Passed:   true,
	}
}

func failingResult() *check.Result {
	return &check.Result{
		Ref:  "feature/SHOP-1-user-authentication",
		Kind: check.KindBranch,
		Violations: []rules.Violation{
			{Code: check.CodeRelevanceLow, Message: "name relates to only 0% of ticket keywords"},
		},
	}
}

func TestRenderResultsText(t *testing.T) {
	t.Cleanup(func() { flagJSON = false; flagQuiet = false })
	flagJSON = false
	flagQuiet = false

	var buf bytes.Buffer
	err := renderResults(&buf, []*check.Result{passingResult(), failingResult()})
	if err != nil {
		t.Fatalf("renderResults failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "ok   feature/SHOP-1-gift-card-app") {
		t.Errorf("missing passing line:\n%s", out)
	}
	if !strings.Contains(out, "FAIL feature/SHOP-1-user-authentication") {
		t.Errorf("missing failing line:\n%s", out)
	}
	if !strings.Contains(out, "relevance-low") {
		t.Errorf("missing violation code:\n%s", out)
	}
	if !strings.Contains(out, "2 checked, 1 failed") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestRenderResultsQuiet(t *testing.T) {
	t.Cleanup(func() { flagJSON = false; flagQuiet = false })
	flagQuiet = true

	var buf bytes.Buffer
	if err := renderResults(&buf, []*check.Result{passingResult(), failingResult()}); err != nil {
		t.Fatalf("renderResults failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "ok   ") {
		t.Errorf("quiet output should hide passing results:\n%s", out)
	}
	if !strings.Contains(out, "FAIL ") {
		t.Errorf("quiet output should keep failures:\n%s", out)
	}
}

func TestRenderResultsJSON(t *testing.T) {
	t.Cleanup(func() { flagJSON = false; flagQuiet = false })
	flagJSON = true

	var buf bytes.Buffer
	if err := renderResults(&buf, []*check.Result{failingResult()}); err != nil {
		t.Fatalf("renderResults failed: %v", err)
	}

	var decoded []*check.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 1 || decoded[0].Passed {
		t.Errorf("unexpected decoded results: %+v", decoded)
	}
}

func TestRenderResultsDegraded(t *testing.T) {
	t.Cleanup(func() { flagJSON = false; flagQuiet = false })

	result := passingResult()
	result.Verdict = nil
	result.TicketUnavailable = true

	var buf bytes.Buffer
	if err := renderResults(&buf, []*check.Result{result}); err != nil {
		t.Fatalf("renderResults failed: %v", err)
	}

	if !strings.Contains(buf.String(), "tracker unreachable") {
		t.Errorf("missing degraded warning:\n%s", buf.String())
	}
}

func TestFinishRunStrictDegraded(t *testing.T) {
	t.Cleanup(func() { flagJSON = false; flagQuiet = false })
	flagQuiet = true

	tests := []struct {
		name         string
		lookupErr    error
		wantSentinel error
	}{
		{
			name:         "auth failure surfaces guidance",
			lookupErr:    errors.New("jira api error (401): Unauthorized"),
			wantSentinel: clierrors.ErrNotAuthenticated,
		},
		{
			name:         "connection failure surfaces guidance",
			lookupErr:    errors.New("dial tcp: connection refused"),
			wantSentinel: clierrors.ErrConnectionFailed,
		},
		{
			name:         "unclassified failure falls back",
			lookupErr:    nil,
			wantSentinel: clierrors.ErrConnectionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &session{
				Settings: &config.Settings{Strict: true, JiraURL: "https://example.atlassian.net"},
				Notifier: notify.NopNotifier{},
			}
			result := passingResult()
			result.Verdict = nil
			result.TicketUnavailable = true
			result.LookupErr = tt.lookupErr

			err := finishRun(&cobra.Command{}, sess, []*check.Result{result})
			if !errors.Is(err, tt.wantSentinel) {
				t.Fatalf("finishRun error = %v, want %v", err, tt.wantSentinel)
			}
			if got := clierrors.ExitCodeFor(err); got != clierrors.ExitUnavailable {
				t.Errorf("ExitCodeFor = %d, want %d", got, clierrors.ExitUnavailable)
			}
		})
	}
}
