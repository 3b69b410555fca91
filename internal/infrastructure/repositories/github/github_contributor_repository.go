package github

import (
	"context"
	"errors"
	"regexp"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/repositories"
	"github.com/rios0rios0/nextver/internal/infrastructure/repositories/httpclient"
)

const providerName = "github"

var errNotGitHubRemote = errors.New("github attribution needs a GitHub remote")

// noreplyEmail matches "<id>+<login>@users.noreply.github.com" and "<login>@users.noreply.github.com".
// The login keeps the case it was written with.
var noreplyEmail = regexp.MustCompile(`(?i)^(?:\d+\+)?([a-z0-9-]+)@users\.noreply\.github\.com$`)

// GitHubContributorRepository implements repositories.ContributorRepository for GitHub.
type GitHubContributorRepository struct {
	client *gh.Client
	owner  string
	name   string
}

// NewContributorRepository creates a GitHub contributor repository for the
// repository the remote points at.
func NewContributorRepository(config entities.ContributorConfig) (repositories.ContributorRepository, error) {
	if !config.Remote.IsKnown() || config.Remote.Provider != entities.ProviderGitHub {
		return nil, errNotGitHubRemote
	}

	client := gh.NewClient(httpclient.New(config.Timeout))
	if config.Token != "" {
		client = client.WithAuthToken(config.Token)
	} else {
		logger.Debug("No GitHub token found, using unauthenticated API requests")
	}

	if baseURL := enterpriseURL(config); baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, err
		}
	}

	return &GitHubContributorRepository{
		client: client,
		owner:  config.Remote.Owner,
		name:   config.Remote.Name,
	}, nil
}

func (p *GitHubContributorRepository) Name() string { return providerName }

// ResolveHandle reads the login from a noreply email when possible and
// otherwise asks the commits API who authored commitID.
func (p *GitHubContributorRepository) ResolveHandle(
	ctx context.Context,
	author entities.Author,
	commitID string,
) (string, bool) {
	if matches := noreplyEmail.FindStringSubmatch(strings.TrimSpace(author.Email)); matches != nil {
		return matches[1], true
	}
	if commitID == "" {
		return "", false
	}

	commit, _, err := p.client.Repositories.GetCommit(ctx, p.owner, p.name, commitID, nil)
	if err != nil {
		logger.Debugf("Failed to fetch commit %s from GitHub API: %v", commitID, err)
		logger.Debugf("This probably means that %s has not been pushed to the remote.", commitID)
		return "", false
	}

	login := commit.GetAuthor().GetLogin()
	return login, login != ""
}

// enterpriseURL returns the API endpoint for GitHub Enterprise remotes.
func enterpriseURL(config entities.ContributorConfig) string {
	if config.BaseURL != "" {
		return config.BaseURL
	}
	if host := config.Remote.Host; host != "" && host != "github.com" {
		return "https://" + host + "/"
	}
	return ""
}
