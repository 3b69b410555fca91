package commands

import (
	"context"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/parsers"
	infraRepos "github.com/rios0rios0/nextver/internal/infrastructure/repositories"
)

// CurrentVersion is the interface for reporting the version being bumped from.
type CurrentVersion interface {
	Execute(ctx context.Context, opts Options) (entities.Version, error)
}

// CurrentVersionCommand reports the version of the resolved base.
type CurrentVersionCommand struct {
	analyzer analyzer
}

// NewCurrentVersionCommand creates a new CurrentVersionCommand.
func NewCurrentVersionCommand(
	opener infraRepos.GitRepositoryOpener,
	parserRegistry *parsers.ParserRegistry,
) *CurrentVersionCommand {
	return &CurrentVersionCommand{analyzer: newAnalyzer(opener, parserRegistry)}
}

// Execute returns the starting version without walking any commits.
func (it *CurrentVersionCommand) Execute(ctx context.Context, opts Options) (entities.Version, error) {
	_, base, err := it.analyzer.open(ctx, opts)
	if err != nil {
		return entities.Version{}, wrapRepoDir(opts.RepoDir, err)
	}
	return base.Version, nil
}
