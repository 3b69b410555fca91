package gitlab

import (
	"context"
	"errors"
	"strings"

	logger "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/repositories"
	"github.com/rios0rios0/nextver/internal/infrastructure/repositories/httpclient"
)

const providerName = "gitlab"

var errClientNotInitialized = errors.New("gitlab client not initialized")

// GitLabContributorRepository implements repositories.ContributorRepository for GitLab.
type GitLabContributorRepository struct {
	client *gl.Client
}

// NewContributorRepository creates a GitLab contributor repository. Remotes
// on a self-hosted instance use that instance's API.
func NewContributorRepository(config entities.ContributorConfig) (repositories.ContributorRepository, error) {
	// the shared client owns retries
	options := []gl.ClientOptionFunc{
		gl.WithHTTPClient(httpclient.New(config.Timeout)),
		gl.WithoutRetries(),
	}
	if baseURL := instanceURL(config); baseURL != "" {
		options = append(options, gl.WithBaseURL(baseURL))
	}

	client, err := gl.NewClient(config.Token, options...)
	if err != nil {
		return nil, err
	}
	return &GitLabContributorRepository{client: client}, nil
}

func (p *GitLabContributorRepository) Name() string { return providerName }

// ResolveHandle searches users by the commit email. GitLab commits do not
// carry the author's username, so the commit itself is not consulted.
func (p *GitLabContributorRepository) ResolveHandle(
	ctx context.Context,
	author entities.Author,
	_ string,
) (string, bool) {
	if p.client == nil {
		logger.Debug(errClientNotInitialized)
		return "", false
	}

	email := strings.TrimSpace(author.Email)
	if email == "" {
		return "", false
	}

	users, _, err := p.client.Users.ListUsers(
		&gl.ListUsersOptions{Search: gl.Ptr(email)},
		gl.WithContext(ctx),
	)
	if err != nil {
		logger.Debugf("Failed to search GitLab users for %s: %v", email, err)
		return "", false
	}

	for _, user := range users {
		if user != nil && user.Username != "" {
			return user.Username, true
		}
	}
	return "", false
}

func instanceURL(config entities.ContributorConfig) string {
	if config.BaseURL != "" {
		return config.BaseURL
	}
	if config.Remote != nil && config.Remote.Host != "" && config.Remote.Host != "gitlab.com" {
		return "https://" + config.Remote.Host
	}
	return ""
}
