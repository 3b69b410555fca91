package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/repositories"
)

// releaseTagPattern matches strict release tags such as "v1.10.0".
var releaseTagPattern = regexp.MustCompile(`^v(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`)

// BaseCommitResolver finds the commit the analysis starts from and the
// version the next one is bumped from.
type BaseCommitResolver struct{}

// NewBaseCommitResolver creates a new BaseCommitResolver.
func NewBaseCommitResolver() *BaseCommitResolver {
	return &BaseCommitResolver{}
}

// Resolve picks the base commit. An explicit ref wins; otherwise the highest
// release tag sharing history with HEAD is merged with it. Without such a tag
// the root commit is used and the version starts at 0.0.0.
func (it *BaseCommitResolver) Resolve(
	ctx context.Context,
	repo repositories.GitRepository,
	explicitRef string,
) (entities.BaseCommit, error) {
	head, err := repo.Head(ctx)
	if err != nil {
		return entities.BaseCommit{}, err
	}
	logger.Debugf("HEAD commit: %s", head)

	if explicitRef != "" {
		return it.resolveExplicit(ctx, repo, explicitRef, head)
	}

	tags, err := repo.ResolveTags(ctx, releaseTagPattern)
	if err != nil {
		return entities.BaseCommit{}, fmt.Errorf("failed to list release tags: %w", err)
	}

	for _, tag := range releaseTagsByVersion(tags) {
		mergeBase, mergeErr := repo.MergeBase(ctx, tag.CommitID, head)
		if errors.Is(mergeErr, entities.ErrNoCommonAncestor) {
			logger.Debugf("Skipping %s: no common history with HEAD", tag.Name)
			continue
		}
		if mergeErr != nil {
			return entities.BaseCommit{}, fmt.Errorf("failed to find merge base of %s and HEAD: %w", tag.Name, mergeErr)
		}

		version, parseErr := entities.ParseVersion(tag.Name)
		if parseErr != nil {
			return entities.BaseCommit{}, parseErr
		}
		logger.Debugf("Last release: %s at commit %s", tag.Name, tag.CommitID)
		logger.Debugf("Base commit for analysis: %s", mergeBase)

		return entities.BaseCommit{
			CommitID: mergeBase,
			HeadID:   head,
			Version:  version,
			Tag:      tag.Name,
		}, nil
	}

	root, err := repo.FirstParentRoot(ctx, head)
	if err != nil {
		return entities.BaseCommit{}, fmt.Errorf("failed to find the initial commit: %w", err)
	}
	logger.Debugf("No previous release tags found, starting from 0.0.0 at root commit %s", root)
	return entities.BaseCommit{
		CommitID:  root,
		Inclusive: true,
		HeadID:    head,
		Version:   entities.ZeroVersion(),
	}, nil
}

func (it *BaseCommitResolver) resolveExplicit(
	ctx context.Context,
	repo repositories.GitRepository,
	ref, head string,
) (entities.BaseCommit, error) {
	commitID, err := repo.ResolveRef(ctx, ref)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidBaseRef) {
			return entities.BaseCommit{}, err
		}
		return entities.BaseCommit{}, fmt.Errorf("%w: %q: %w", entities.ErrInvalidBaseRef, ref, err)
	}

	base := entities.BaseCommit{
		CommitID: commitID,
		HeadID:   head,
		Version:  entities.ZeroVersion(),
	}
	if releaseTagPattern.MatchString(ref) {
		if version, parseErr := entities.ParseVersion(ref); parseErr == nil {
			base.Version = version
			base.Tag = ref
		}
	}

	logger.Debugf("Using explicit base %q at commit %s (version %s)", ref, commitID, base.Version)
	return base, nil
}

// releaseTagsByVersion returns the release tags, highest version first. Ties
// (several tags on equal versions) are broken by name for determinism.
func releaseTagsByVersion(tags []entities.Tag) []entities.Tag {
	candidates := make([]entities.Tag, 0, len(tags))
	for _, tag := range tags {
		if releaseTagPattern.MatchString(tag.Name) && semver.IsValid(tag.Name) {
			candidates = append(candidates, tag)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if cmp := semver.Compare(candidates[i].Name, candidates[j].Name); cmp != 0 {
			return cmp > 0
		}
		return candidates[i].Name < candidates[j].Name
	})
	return candidates
}
