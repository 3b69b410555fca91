package entities

import (
	"fmt"
	"time"

	globalEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

const (
	ProviderGitHub      = "github"
	ProviderGitLab      = "gitlab"
	ProviderAzureDevOps = "azuredevops"
)

// ServiceTypeOf maps a provider name onto the hosting service enum shared with gitforge.
func ServiceTypeOf(provider string) globalEntities.ServiceType {
	switch provider {
	case ProviderGitHub:
		return globalEntities.GITHUB
	case ProviderGitLab:
		return globalEntities.GITLAB
	case ProviderAzureDevOps:
		return globalEntities.AZUREDEVOPS
	default:
		return globalEntities.UNKNOWN
	}
}

// ProviderOf is the inverse of ServiceTypeOf. Unsupported services map to "".
func ProviderOf(serviceType globalEntities.ServiceType) string {
	switch serviceType { //nolint:exhaustive // only the providers nextver knows about
	case globalEntities.GITHUB:
		return ProviderGitHub
	case globalEntities.GITLAB:
		return ProviderGitLab
	case globalEntities.AZUREDEVOPS:
		return ProviderAzureDevOps
	default:
		return ""
	}
}

// RemoteInfo holds the parsed components of a Git remote URL.
type RemoteInfo struct {
	Provider string
	Host     string
	Owner    string
	Project  string // Azure DevOps only
	Name     string
}

// IsKnown reports whether the remote points at a supported hosting platform.
func (r *RemoteInfo) IsKnown() bool {
	return r != nil && r.Provider != "" && r.Owner != "" && r.Name != ""
}

// CompareURL builds the web URL comparing two release tags.
func (r *RemoteInfo) CompareURL(fromTag, toTag string) string {
	if !r.IsKnown() {
		return ""
	}
	switch r.Provider {
	case ProviderGitHub:
		return fmt.Sprintf("https://%s/%s/%s/compare/%s...%s", r.hostOr("github.com"), r.Owner, r.Name, fromTag, toTag)
	case ProviderGitLab:
		return fmt.Sprintf("https://%s/%s/%s/-/compare/%s...%s", r.hostOr("gitlab.com"), r.Owner, r.Name, fromTag, toTag)
	case ProviderAzureDevOps:
		return fmt.Sprintf(
			"https://dev.azure.com/%s/%s/_git/%s/branchCompare?baseVersion=GT%s&targetVersion=GT%s",
			r.Owner, r.Project, r.Name, fromTag, toTag,
		)
	default:
		return ""
	}
}

func (r *RemoteInfo) hostOr(fallback string) string {
	if r.Host == "" {
		return fallback
	}
	return r.Host
}

// ContributorConfig configures a contributor repository.
type ContributorConfig struct {
	Token   string
	BaseURL string
	Timeout time.Duration
	Remote  *RemoteInfo
}
