// Package parsers turns free-text commit messages into structured commits.
// Two strategies exist: the Conventional Commits grammar and a set of
// caller-supplied regular expressions.
package parsers

import (
	"github.com/rios0rios0/nextver/internal/domain/entities"
)

const (
	// StrategyConventional selects the Conventional Commits grammar.
	StrategyConventional = "conventional"
	// StrategyCustom selects the caller-supplied regular expressions.
	StrategyCustom = "custom"
)

// CommitParser extracts type, scope and breaking-change intent from a message.
// Parse never fails: a message outside the grammar yields an empty Type.
type CommitParser interface {
	Name() string
	Parse(commitID, rawMessage string) entities.Commit
}

// Patterns holds the regular expressions of the custom strategy. Empty
// fields fall back to the defaults.
type Patterns struct {
	Type     string
	Scope    string
	Title    string
	Body     string
	Breaking string
}
