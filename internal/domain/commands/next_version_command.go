package commands

import (
	"context"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/parsers"
	infraRepos "github.com/rios0rios0/nextver/internal/infrastructure/repositories"
)

// NextVersion is the interface for the next-version computation.
type NextVersion interface {
	Execute(ctx context.Context, opts Options) (entities.Version, error)
}

// NextVersionCommand computes the version the next release should carry.
type NextVersionCommand struct {
	analyzer analyzer
}

// NewNextVersionCommand creates a new NextVersionCommand.
func NewNextVersionCommand(
	opener infraRepos.GitRepositoryOpener,
	parserRegistry *parsers.ParserRegistry,
) *NextVersionCommand {
	return &NextVersionCommand{analyzer: newAnalyzer(opener, parserRegistry)}
}

// Execute returns the next version. When no commit asks for a release the
// starting version is returned unchanged.
func (it *NextVersionCommand) Execute(ctx context.Context, opts Options) (entities.Version, error) {
	result, err := it.analyzer.run(ctx, opts)
	if err != nil {
		return entities.Version{}, wrapRepoDir(opts.RepoDir, err)
	}
	return result.next, nil
}
