package parsers

import (
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

const (
	breakingChangeMarker = "BREAKING CHANGE:"
	majorType            = "major"
)

// conventionalHeader matches `type(scope)!: title` on the first line.
var conventionalHeader = regexp.MustCompile(`^([\w-]+)(?:\(([^)]+)\))?(!)?:\s*(.*)$`)

// ConventionalParser implements the Conventional Commits grammar.
type ConventionalParser struct {
	header *regexp.Regexp
}

// NewConventionalParser creates the default parser.
func NewConventionalParser() *ConventionalParser {
	return &ConventionalParser{header: conventionalHeader}
}

func (p *ConventionalParser) Name() string { return StrategyConventional }

// Parse splits the message into header and body. A breaking change is
// flagged by "!" before the colon, by the "major" type, or by a body whose
// first line starts with "BREAKING CHANGE:" right after the blank separator.
func (p *ConventionalParser) Parse(commitID, rawMessage string) entities.Commit {
	commit := entities.Commit{ID: commitID, RawMessage: rawMessage}

	lines := strings.Split(strings.TrimRight(entities.NormalizeNewlines(rawMessage), "\n"), "\n")
	header := strings.TrimRight(lines[0], " \t")
	commit.Title = header

	matches := p.header.FindStringSubmatch(header)
	if matches == nil {
		logger.Debugf("Conventional parser: %s does not follow the grammar: %q", shortID(commitID), header)
		return commit
	}

	commit.Type = matches[1]
	commit.Scope = matches[2]
	commit.Title = matches[4]

	separated := len(lines) > 1 && strings.TrimSpace(lines[1]) == ""
	body := bodyAfterHeader(lines)
	commit.Body = body

	bang := matches[3] != ""
	bodyMarker := separated && strings.HasPrefix(body, breakingChangeMarker)
	explicitMajor := commit.Type == majorType
	commit.HasBreakingChange = bang || bodyMarker || explicitMajor

	if commit.HasBreakingChange {
		logger.Debugf(
			"Conventional parser: %s is breaking (bang=%t, body=%t, major=%t)",
			shortID(commitID), bang, bodyMarker, explicitMajor,
		)
	}

	return commit
}

// bodyAfterHeader joins the lines after the header, dropping the leading
// blank lines.
func bodyAfterHeader(lines []string) string {
	start := 1
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start >= len(lines) {
		return ""
	}
	return strings.Join(lines[start:], "\n")
}

func shortID(commitID string) string {
	const length = 8
	if len(commitID) > length {
		return commitID[:length]
	}
	return commitID
}
