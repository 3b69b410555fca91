//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nextver/internal/domain/commands"
	"github.com/rios0rios0/nextver/internal/domain/entities"
)

func TestParseRemoteURL(t *testing.T) {
	t.Parallel()

	t.Run("should parse GitHub SSH URL", func(t *testing.T) {
		t.Parallel()

		// given
		url := "git@github.com:myorg/myrepo.git"

		// when
		info, err := commands.ParseRemoteURL(url)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProviderGitHub, info.Provider)
		assert.Equal(t, "github.com", info.Host)
		assert.Equal(t, "myorg", info.Owner)
		assert.Equal(t, "myrepo", info.Name)
	})

	t.Run("should parse GitHub HTTPS URL", func(t *testing.T) {
		t.Parallel()

		// given
		url := "https://github.com/myorg/myrepo.git"

		// when
		info, err := commands.ParseRemoteURL(url)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProviderGitHub, info.Provider)
		assert.Equal(t, "myorg", info.Owner)
		assert.Equal(t, "myrepo", info.Name)
	})

	t.Run("should parse GitHub ssh scheme URL with port", func(t *testing.T) {
		t.Parallel()

		// given
		url := "ssh://git@github.com:22/myorg/myrepo.git"

		// when
		info, err := commands.ParseRemoteURL(url)

		// then
		require.NoError(t, err)
		assert.Equal(t, "github.com", info.Host)
		assert.Equal(t, "myrepo", info.Name)
	})

	t.Run("should parse GitLab URL with nested groups", func(t *testing.T) {
		t.Parallel()

		// given
		url := "https://gitlab.com/group/sub/project.git"

		// when
		info, err := commands.ParseRemoteURL(url)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProviderGitLab, info.Provider)
		assert.Equal(t, "group/sub", info.Owner)
		assert.Equal(t, "project", info.Name)
	})

	t.Run("should parse self-hosted GitLab SSH URL", func(t *testing.T) {
		t.Parallel()

		// given
		url := "git@gitlab.example.com:group/project.git"

		// when
		info, err := commands.ParseRemoteURL(url)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProviderGitLab, info.Provider)
		assert.Equal(t, "gitlab.example.com", info.Host)
	})

	t.Run("should parse self-hosted GitHub HTTPS URL", func(t *testing.T) {
		t.Parallel()

		// given
		url := "https://github.example.com/myorg/myrepo.git"

		// when
		info, err := commands.ParseRemoteURL(url)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProviderGitHub, info.Provider)
		assert.Equal(t, "github.example.com", info.Host)
		assert.Equal(t, "myorg", info.Owner)
		assert.Equal(t, "myrepo", info.Name)
	})

	t.Run("should parse self-hosted GitLab HTTPS URL with nested groups", func(t *testing.T) {
		t.Parallel()

		// given
		url := "https://gitlab.example.com/group/sub/project/"

		// when
		info, err := commands.ParseRemoteURL(url)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProviderGitLab, info.Provider)
		assert.Equal(t, "gitlab.example.com", info.Host)
		assert.Equal(t, "group/sub", info.Owner)
		assert.Equal(t, "project", info.Name)
	})

	t.Run("should parse Azure DevOps SSH URL", func(t *testing.T) {
		t.Parallel()

		// given
		url := "git@ssh.dev.azure.com:v3/myorg/myproject/myrepo"

		// when
		info, err := commands.ParseRemoteURL(url)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProviderAzureDevOps, info.Provider)
		assert.Equal(t, "dev.azure.com", info.Host)
		assert.Equal(t, "myorg", info.Owner)
		assert.Equal(t, "myproject", info.Project)
		assert.Equal(t, "myrepo", info.Name)
	})

	t.Run("should parse Azure DevOps HTTPS URL", func(t *testing.T) {
		t.Parallel()

		// given
		url := "https://myorg@dev.azure.com/myorg/myproject/_git/myrepo"

		// when
		info, err := commands.ParseRemoteURL(url)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProviderAzureDevOps, info.Provider)
		assert.Equal(t, "myorg", info.Owner)
		assert.Equal(t, "myproject", info.Project)
		assert.Equal(t, "myrepo", info.Name)
	})

	t.Run("should reject an unsupported host", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := commands.ParseRemoteURL("https://bitbucket.org/team/repo.git")

		// then
		require.Error(t, err)
	})

	t.Run("should reject a GitHub URL without owner and repo", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := commands.ParseRemoteURL("https://github.com/only")

		// then
		require.Error(t, err)
	})
}
