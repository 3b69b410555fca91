package parsers

import (
	"fmt"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

// Default patterns of the custom strategy. Each one captures its field in
// group 1; the breaking pattern only needs to match.
const (
	DefaultTypePattern     = `^([\w-]+)(?:.*)?!?:.*`
	DefaultScopePattern    = `^[\w-]+(?:\((.*)\))?!?:.*`
	DefaultTitlePattern    = `^[\w-]+(?:.*)?!?:\s(.*)`
	DefaultBodyPattern     = `^[\w-]+(?:.*)?!?:\s.*\n\s*(?:BREAKING CHANGE:)?\s*([\s\S]*)`
	DefaultBreakingPattern = `(?:^[^\n]*\n\nBREAKING CHANGE:.*|^[\w-]+(?:.*)?!:.*)`
)

// CustomParser classifies commits with caller-supplied regular expressions.
// The expressions are compiled once and never change afterwards.
type CustomParser struct {
	typeRegex     *regexp.Regexp
	scopeRegex    *regexp.Regexp
	titleRegex    *regexp.Regexp
	bodyRegex     *regexp.Regexp
	breakingRegex *regexp.Regexp
}

// NewCustomParser compiles the patterns. Empty patterns use the defaults; a
// pattern that does not compile is a configuration error.
func NewCustomParser(patterns Patterns) (*CustomParser, error) {
	compiled := make([]*regexp.Regexp, 0, 5) //nolint:mnd // five patterns
	for _, p := range []struct {
		name, value, fallback string
	}{
		{"type", patterns.Type, DefaultTypePattern},
		{"scope", patterns.Scope, DefaultScopePattern},
		{"title", patterns.Title, DefaultTitlePattern},
		{"body", patterns.Body, DefaultBodyPattern},
		{"breaking", patterns.Breaking, DefaultBreakingPattern},
	} {
		expr := p.value
		if expr == "" {
			expr = p.fallback
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s pattern %q: %w", entities.ErrInvalidPattern, p.name, expr, err)
		}
		compiled = append(compiled, re)
	}

	return &CustomParser{
		typeRegex:     compiled[0],
		scopeRegex:    compiled[1],
		titleRegex:    compiled[2],
		bodyRegex:     compiled[3],
		breakingRegex: compiled[4],
	}, nil
}

func (p *CustomParser) Name() string { return StrategyCustom }

// Parse applies each expression independently. A missing or non-matching
// capture group leaves the field empty.
func (p *CustomParser) Parse(commitID, rawMessage string) entities.Commit {
	message := entities.NormalizeNewlines(rawMessage)
	commit := entities.Commit{ID: commitID, RawMessage: rawMessage}

	commit.Type = firstGroup(p.typeRegex, message)
	commit.Scope = firstGroup(p.scopeRegex, message)
	commit.Title = firstGroup(p.titleRegex, message)
	if commit.Title == "" {
		commit.Title = strings.TrimSpace(strings.SplitN(message, "\n", 2)[0]) //nolint:mnd // header and rest
	}
	commit.Body = strings.TrimSpace(firstGroup(p.bodyRegex, message))
	commit.HasBreakingChange = p.breakingRegex.MatchString(message)

	logger.Debugf(
		"Custom parser: %s type=%q scope=%q breaking=%t",
		shortID(commitID), commit.Type, commit.Scope, commit.HasBreakingChange,
	)
	return commit
}

func firstGroup(re *regexp.Regexp, message string) string {
	matches := re.FindStringSubmatch(message)
	if len(matches) < 2 { //nolint:mnd // whole match plus group 1
		return ""
	}
	return matches[1]
}
