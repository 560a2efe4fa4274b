// Package git reads the local repository state branchlint checks:
// the current branch name, commit subjects over a revision range, and
// remote URLs for provider detection.
//
// Commands run through a CommandRunner so tests can stub git without a
// real repository. It also generates convention-compliant branch name
// suggestions from ticket summaries.
package git
