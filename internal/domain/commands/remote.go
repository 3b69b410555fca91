package commands

import (
	"fmt"
	"net/url"
	"strings"

	gitInfra "github.com/rios0rios0/gitforge/pkg/git/infrastructure"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

const azureDevOpsHost = "dev.azure.com"

// parseRemoteURL extracts provider, owner, project, and repo name from a Git remote URL.
// gitforge does the parsing; the host is kept so self-hosted GitHub and GitLab
// instances get the right API endpoint and compare links.
func parseRemoteURL(rawURL string) (*entities.RemoteInfo, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), "/")

	host, path, err := splitHostPath(cleaned)
	if err != nil {
		return nil, err
	}

	parsed, err := gitInfra.ParseRemoteURL(canonicalRemote(cleaned, host, path))
	if err != nil {
		return nil, fmt.Errorf("unsupported git remote URL %s: %w", rawURL, err)
	}

	provider := entities.ProviderOf(parsed.ServiceType)
	if provider == "" {
		return nil, fmt.Errorf("unsupported git remote URL: %s", rawURL)
	}
	if provider == entities.ProviderAzureDevOps {
		host = azureDevOpsHost
	}

	return &entities.RemoteInfo{
		Provider: provider,
		Host:     host,
		Owner:    parsed.Organization,
		Project:  parsed.Project,
		Name:     parsed.RepoName,
	}, nil
}

// canonicalRemote rewrites GitHub and GitLab remotes into the scp-like form on
// the public host, which is the shape gitforge recognizes for ssh:// URLs and
// self-hosted instances alike. Azure DevOps URLs are passed through.
func canonicalRemote(cleaned, host, path string) string {
	if strings.Contains(host, azureDevOpsHost) {
		return cleaned
	}

	switch {
	case host == "github.com" || strings.HasPrefix(host, "github."):
		host = "github.com"
	case host == "gitlab.com" || strings.HasPrefix(host, "gitlab."):
		host = "gitlab.com"
	}
	return "git@" + host + ":" + strings.Trim(path, "/")
}

// splitHostPath handles both scp-like SSH ("git@host:path") and URL forms.
func splitHostPath(remote string) (string, string, error) {
	if !strings.Contains(remote, "://") {
		userHost, path, ok := strings.Cut(remote, ":")
		if !ok {
			return "", "", fmt.Errorf("invalid SSH URL: %s", remote)
		}
		host := userHost
		if _, after, found := strings.Cut(userHost, "@"); found {
			host = after
		}
		return host, path, nil
	}

	parsed, err := url.Parse(remote)
	if err != nil {
		return "", "", fmt.Errorf("invalid remote URL %s: %w", remote, err)
	}
	return parsed.Hostname(), parsed.Path, nil
}
