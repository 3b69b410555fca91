package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/parsers"
	"github.com/rios0rios0/nextver/internal/domain/repositories"
	"github.com/rios0rios0/nextver/internal/domain/services"
	infraRepos "github.com/rios0rios0/nextver/internal/infrastructure/repositories"
)

// Options holds everything a version or changelog computation needs.
type Options struct {
	RepoDir  string
	Parser   string
	Patterns parsers.Patterns
	Classes  entities.TypeClasses
	// BaseRef overrides the base commit detection when set.
	BaseRef string
	Render  services.RenderOptions
	// Contributor lookup settings; an empty provider is detected from the remote.
	ContributorProvider string
	Token               string
	BaseURL             string
	Timeout             time.Duration
}

// analysis is the result of walking the commit range once.
type analysis struct {
	repo    repositories.GitRepository
	base    entities.BaseCommit
	bump    entities.VersionBump
	summary *entities.ChangesetSummary
	next    entities.Version
}

// analyzer holds the collaborators shared by every command.
type analyzer struct {
	opener         infraRepos.GitRepositoryOpener
	parserRegistry *parsers.ParserRegistry
	resolver       *services.BaseCommitResolver
	calculator     *services.BumpCalculator
}

func newAnalyzer(opener infraRepos.GitRepositoryOpener, parserRegistry *parsers.ParserRegistry) analyzer {
	return analyzer{
		opener:         opener,
		parserRegistry: parserRegistry,
		resolver:       services.NewBaseCommitResolver(),
		calculator:     services.NewBumpCalculator(),
	}
}

// open opens the repository and resolves the base commit.
func (a analyzer) open(ctx context.Context, opts Options) (repositories.GitRepository, entities.BaseCommit, error) {
	repo, err := a.opener(opts.RepoDir)
	if err != nil {
		return nil, entities.BaseCommit{}, err
	}

	base, err := a.resolver.Resolve(ctx, repo, opts.BaseRef)
	if err != nil {
		return nil, entities.BaseCommit{}, err
	}
	return repo, base, nil
}

// run builds the parser first so configuration errors surface before any
// repository access, then walks the range.
func (a analyzer) run(ctx context.Context, opts Options) (*analysis, error) {
	parserName := opts.Parser
	if parserName == "" {
		parserName = parsers.StrategyConventional
	}
	parser, err := a.parserRegistry.Get(parserName, opts.Patterns)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Parser initialized: %s", parser.Name())

	repo, base, err := a.open(ctx, opts)
	if err != nil {
		return nil, err
	}

	bump, summary, err := a.calculator.Calculate(ctx, repo, base, parser, opts.Classes)
	if err != nil {
		return nil, err
	}

	next := base.Version.Bump(bump)
	if bump.IsEmpty() {
		logger.Debugf("No release necessary, staying at %s", next)
	} else {
		logger.Debugf("Next version: %s", next)
	}

	return &analysis{repo: repo, base: base, bump: bump, summary: summary, next: next}, nil
}

func wrapRepoDir(dir string, err error) error {
	if dir == "" {
		dir = "."
	}
	return fmt.Errorf("%s: %w", dir, err)
}
