package git

import (
	"strings"
)

// logFormat emits NUL-separated fields and a record separator so commit
// bodies with newlines parse unambiguously.
const logFormat = "--format=%H%x00%s%x00%b%x1e"

// Commit is one commit from the log.
type Commit struct {
	SHA     string
	Subject string
	Body    string
}

// Message returns the full commit message (subject plus body).
func (c Commit) Message() string {
	if c.Body == "" {
		return c.Subject
	}
	return c.Subject + "\n\n" + c.Body
}

// ShortSHA returns the abbreviated commit hash.
func (c Commit) ShortSHA() string {
	if len(c.SHA) > 7 {
		return c.SHA[:7]
	}
	return c.SHA
}

// Commits returns the commits in the given revision range, oldest first.
// revRange uses git syntax (e.g., "main..HEAD", "HEAD~3..").
func (g *Context) Commits(revRange string) ([]Commit, error) {
	out, err := g.runGit("log", "--reverse", logFormat, revRange)
	if err != nil {
		return nil, &Error{Op: "log " + revRange, Err: err}
	}
	return parseLog(out), nil
}

// parseLog splits git log output produced with logFormat.
func parseLog(out string) []Commit {
	var commits []Commit
	for _, record := range strings.Split(out, "\x1e") {
		record = strings.TrimLeft(record, "\n")
		if strings.TrimSpace(record) == "" {
			continue
		}
		fields := strings.SplitN(record, "\x00", 3)
		if len(fields) < 2 {
			continue
		}
		c := Commit{SHA: fields[0], Subject: fields[1]}
		if len(fields) == 3 {
			c.Body = strings.TrimSpace(fields[2])
		}
		commits = append(commits, c)
	}
	return commits
}

// StripComments removes comment lines and trailing blank lines from a
// commit message file, the way git does before committing. Used when
// validating COMMIT_EDITMSG from the commit-msg hook.
func StripComments(message string) string {
	var kept []string
	for _, line := range strings.Split(message, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimRight(strings.Join(kept, "\n"), "\n")
}
