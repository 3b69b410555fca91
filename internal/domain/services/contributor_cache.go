package services

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/repositories"
)

// HandleResolver returns the hosting handle of a commit's author.
type HandleResolver interface {
	ResolveHandle(ctx context.Context, commit entities.Commit) (string, bool)
}

type cachedHandle struct {
	handle string
	found  bool
}

// ContributorCache memoizes handle lookups per author identity for a single
// render. Misses and failures are cached too, so every identity costs at
// most one lookup.
type ContributorCache struct {
	repository repositories.ContributorRepository
	handles    map[string]cachedHandle
}

// NewContributorCache wraps a contributor repository with a per-run cache.
func NewContributorCache(repository repositories.ContributorRepository) *ContributorCache {
	return &ContributorCache{
		repository: repository,
		handles:    make(map[string]cachedHandle),
	}
}

// ResolveHandle returns the cached handle or asks the repository once.
func (c *ContributorCache) ResolveHandle(ctx context.Context, commit entities.Commit) (string, bool) {
	if c.repository == nil || commit.Author == nil || commit.Author.IsEmpty() {
		return "", false
	}

	key := commit.Author.Key()
	if cached, ok := c.handles[key]; ok {
		return cached.handle, cached.found
	}

	handle, found := c.repository.ResolveHandle(ctx, *commit.Author, commit.ID)
	if !found {
		logger.Debugf("No %s handle for %s <%s>", c.repository.Name(), commit.Author.Name, commit.Author.Email)
	}
	c.handles[key] = cachedHandle{handle: handle, found: found}
	return handle, found
}
