package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	ghRepo "github.com/rios0rios0/nextver/internal/infrastructure/repositories/github"
	"github.com/rios0rios0/nextver/internal/infrastructure/repositories/gitrepo"
	glRepo "github.com/rios0rios0/nextver/internal/infrastructure/repositories/gitlab"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register contributor registry with all hosting-platform factories
	if err := container.Provide(func() *ContributorRegistry {
		reg := NewContributorRegistry()
		reg.Register(entities.ProviderGitHub, ghRepo.NewContributorRepository)
		reg.Register(entities.ProviderGitLab, glRepo.NewContributorRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register the go-git backed repository opener
	if err := container.Provide(func() GitRepositoryOpener {
		return gitrepo.Open
	}); err != nil {
		return err
	}

	return nil
}
