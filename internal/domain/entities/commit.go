package entities

import "strings"

// Author is the commit author identity as recorded in version control.
type Author struct {
	Name  string
	Email string
}

// Key normalizes the identity for use as a cache key.
func (a Author) Key() string {
	return strings.ToLower(strings.TrimSpace(a.Name)) + "\x00" + strings.ToLower(strings.TrimSpace(a.Email))
}

// IsEmpty reports whether neither name nor email is known.
func (a Author) IsEmpty() bool {
	return strings.TrimSpace(a.Name) == "" && strings.TrimSpace(a.Email) == ""
}

// RawCommit is a commit as read from version control, before parsing.
type RawCommit struct {
	ID      string
	Message string
	Author  *Author
}

// Commit is the parsed representation of one commit.
type Commit struct {
	ID                string
	RawMessage        string
	Type              string
	Scope             string
	HasBreakingChange bool
	Title             string
	Body              string
	Author            *Author
}

// HasScope reports whether the commit carried a scope.
func (c Commit) HasScope() bool { return c.Scope != "" }

// HasBody reports whether the commit carried a body.
func (c Commit) HasBody() bool { return c.Body != "" }

// HeadLine returns the first line of the raw commit message.
func (c Commit) HeadLine() string {
	line, _, _ := strings.Cut(NormalizeNewlines(c.RawMessage), "\n")
	return strings.TrimRight(line, " \t")
}

// BodyLines returns the message lines after the head line, with leading
// blank lines and trailing whitespace-only lines removed.
func (c Commit) BodyLines() []string {
	_, rest, found := strings.Cut(NormalizeNewlines(c.RawMessage), "\n")
	if !found {
		return nil
	}
	lines := strings.Split(rest, "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// NormalizeNewlines converts CRLF line endings to LF.
func NormalizeNewlines(message string) string {
	return strings.ReplaceAll(message, "\r\n", "\n")
}
