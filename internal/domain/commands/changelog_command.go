package commands

import (
	"context"

	"github.com/rios0rios0/gitforge/pkg/config/domain/helpers"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/parsers"
	"github.com/rios0rios0/nextver/internal/domain/repositories"
	"github.com/rios0rios0/nextver/internal/domain/services"
	infraRepos "github.com/rios0rios0/nextver/internal/infrastructure/repositories"
)

const originRemote = "origin"

// Changelog is the interface for the changelog computation.
type Changelog interface {
	Execute(ctx context.Context, opts Options) (string, error)
}

// ChangelogCommand renders the markdown changelog of the next release.
type ChangelogCommand struct {
	analyzer            analyzer
	renderer            *services.ChangelogRenderer
	contributorRegistry *infraRepos.ContributorRegistry
}

// NewChangelogCommand creates a new ChangelogCommand.
func NewChangelogCommand(
	opener infraRepos.GitRepositoryOpener,
	parserRegistry *parsers.ParserRegistry,
	contributorRegistry *infraRepos.ContributorRegistry,
) *ChangelogCommand {
	return &ChangelogCommand{
		analyzer:            newAnalyzer(opener, parserRegistry),
		renderer:            services.NewChangelogRenderer(),
		contributorRegistry: contributorRegistry,
	}
}

// Execute walks the range and renders every collected commit.
func (it *ChangelogCommand) Execute(ctx context.Context, opts Options) (string, error) {
	result, err := it.analyzer.run(ctx, opts)
	if err != nil {
		return "", wrapRepoDir(opts.RepoDir, err)
	}

	remote := detectRemote(ctx, result.repo)

	var resolver services.HandleResolver
	if opts.Render.Contributors {
		if contributors := it.contributorRepository(remote, opts); contributors != nil {
			resolver = services.NewContributorCache(contributors)
		}
	}

	release := services.ReleaseInfo{
		Previous: result.base.Version,
		Next:     result.next,
		Remote:   remote,
	}
	return it.renderer.Render(ctx, result.summary, release, opts.Render, resolver), nil
}

// contributorRepository picks the hosting API used for attribution. It
// returns nil when attribution is not possible, which only disables the
// "(by @handle)" suffix.
func (it *ChangelogCommand) contributorRepository(
	remote *entities.RemoteInfo,
	opts Options,
) repositories.ContributorRepository {
	if it.contributorRegistry == nil {
		return nil
	}

	provider := opts.ContributorProvider
	if provider == "" && remote.IsKnown() {
		provider = remote.Provider
	}
	if provider == "" {
		logger.Debug("Contributor attribution skipped: remote is not on a supported hosting platform")
		return nil
	}

	if !it.contributorRegistry.Has(provider) {
		logger.Debugf("Contributor attribution skipped: no handle lookup for provider %q", provider)
		return nil
	}

	token := opts.Token
	if token == "" {
		token = helpers.ResolveTokenFromEnv(entities.ServiceTypeOf(provider))
	}

	contributors, err := it.contributorRegistry.Get(provider, entities.ContributorConfig{
		Token:   token,
		BaseURL: opts.BaseURL,
		Timeout: opts.Timeout,
		Remote:  remote,
	})
	if err != nil {
		logger.Warnf("Contributor attribution disabled: %v", err)
		return nil
	}
	return contributors
}

// detectRemote parses the origin remote. A missing or unsupported remote is
// not an error; it only disables attribution and comparison links.
func detectRemote(ctx context.Context, repo repositories.GitRepository) *entities.RemoteInfo {
	rawURL, err := repo.RemoteURL(ctx, originRemote)
	if err != nil || rawURL == "" {
		logger.Debugf("No %q remote found", originRemote)
		return nil
	}

	remote, err := parseRemoteURL(rawURL)
	if err != nil {
		logger.Debugf("Remote not recognized: %v", err)
		return nil
	}
	logger.Debugf("Detected provider: %s, owner: %s, repo: %s", remote.Provider, remote.Owner, remote.Name)
	return remote
}
