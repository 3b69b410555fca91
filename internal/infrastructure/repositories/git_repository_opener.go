package repositories

import (
	domainRepos "github.com/rios0rios0/nextver/internal/domain/repositories"
)

// GitRepositoryOpener opens the repository containing the given directory.
type GitRepositoryOpener func(path string) (domainRepos.GitRepository, error)
