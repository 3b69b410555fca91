//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/nextver/internal/domain/commands"
	"github.com/rios0rios0/nextver/internal/domain/entities"
)

// StubNextVersionCommand is a stub implementation of commands.NextVersion.
type StubNextVersionCommand struct {
	ExecuteCallCount int
	Version          entities.Version
	ExecuteErr       error
	LastOpts         commands.Options
}

var _ commands.NextVersion = (*StubNextVersionCommand)(nil)

func (s *StubNextVersionCommand) Execute(_ context.Context, opts commands.Options) (entities.Version, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Version, s.ExecuteErr
}

// StubCurrentVersionCommand is a stub implementation of commands.CurrentVersion.
type StubCurrentVersionCommand struct {
	ExecuteCallCount int
	Version          entities.Version
	ExecuteErr       error
	LastOpts         commands.Options
}

var _ commands.CurrentVersion = (*StubCurrentVersionCommand)(nil)

func (s *StubCurrentVersionCommand) Execute(_ context.Context, opts commands.Options) (entities.Version, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Version, s.ExecuteErr
}

// StubChangelogCommand is a stub implementation of commands.Changelog.
type StubChangelogCommand struct {
	ExecuteCallCount int
	Markdown         string
	ExecuteErr       error
	LastOpts         commands.Options
}

var _ commands.Changelog = (*StubChangelogCommand)(nil)

func (s *StubChangelogCommand) Execute(_ context.Context, opts commands.Options) (string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Markdown, s.ExecuteErr
}
