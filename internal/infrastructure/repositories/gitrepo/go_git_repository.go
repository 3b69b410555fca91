// Package gitrepo reads commit history, tags and remotes with go-git, so no
// git CLI installation is required.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"regexp"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	gitInfra "github.com/rios0rios0/gitforge/pkg/git/infrastructure"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/repositories"
)

const originRemote = "origin"

// GoGitRepository implements repositories.GitRepository on top of go-git.
type GoGitRepository struct {
	repo *git.Repository
}

// NewGoGitRepository wraps an already opened repository.
func NewGoGitRepository(repo *git.Repository) *GoGitRepository {
	return &GoGitRepository{repo: repo}
}

// Open opens the repository containing path, walking up to find ".git".
// An empty path means the current working directory.
func Open(path string) (repositories.GitRepository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logger.Debugf("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w at %s", entities.ErrRepositoryNotFound, path)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return NewGoGitRepository(repo), nil
}

// Head returns the commit HEAD points at.
func (r *GoGitRepository) Head(_ context.Context) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", entities.ErrEmptyRepository
		}
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	return head.Hash().String(), nil
}

// ResolveRef resolves tags (annotated or lightweight), branches and hashes.
func (r *GoGitRepository) ResolveRef(_ context.Context, ref string) (string, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", entities.ErrInvalidBaseRef, ref, err)
	}
	return hash.String(), nil
}

// ResolveTags lists the tags matching pattern, peeled to their commits.
// Tags that do not point at a commit are skipped.
func (r *GoGitRepository) ResolveTags(_ context.Context, pattern *regexp.Regexp) ([]entities.Tag, error) {
	tagIter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags []entities.Tag
	err = tagIter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if pattern != nil && !pattern.MatchString(name) {
			return nil
		}

		commitID, peelErr := r.peelTag(ref)
		if peelErr != nil {
			logger.Debugf("[git] skipping tag %s: %v", name, peelErr)
			return nil
		}
		tags = append(tags, entities.Tag{Name: name, CommitID: commitID})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	logger.Debugf("[git] found %d matching tags", len(tags))
	return tags, nil
}

func (r *GoGitRepository) peelTag(ref *plumbing.Reference) (string, error) {
	tagObject, err := r.repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		commit, commitErr := tagObject.Commit()
		if commitErr != nil {
			return "", commitErr
		}
		return commit.Hash.String(), nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		// lightweight tag
		commit, commitErr := r.repo.CommitObject(ref.Hash())
		if commitErr != nil {
			return "", commitErr
		}
		return commit.Hash.String(), nil
	default:
		return "", err
	}
}

// MergeBase returns the nearest common ancestor of the two commits.
func (r *GoGitRepository) MergeBase(_ context.Context, commitA, commitB string) (string, error) {
	first, err := r.commit(commitA)
	if err != nil {
		return "", err
	}
	second, err := r.commit(commitB)
	if err != nil {
		return "", err
	}

	bases, err := first.MergeBase(second)
	if err != nil {
		return "", fmt.Errorf("computing merge base of %s and %s: %w", commitA, commitB, err)
	}
	if len(bases) == 0 {
		return "", fmt.Errorf("%w: %s and %s", entities.ErrNoCommonAncestor, commitA, commitB)
	}
	return bases[0].Hash.String(), nil
}

// FirstParentRoot follows first parents until a commit without parents.
func (r *GoGitRepository) FirstParentRoot(ctx context.Context, commitID string) (string, error) {
	current, err := r.commit(commitID)
	if err != nil {
		return "", err
	}

	for current.NumParents() > 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		current, err = current.Parent(0)
		if err != nil {
			return "", fmt.Errorf("reading first parent: %w", err)
		}
	}
	return current.Hash.String(), nil
}

// ListCommits yields the commits reachable from toInclusive but not from
// fromExclusive, ordered by committer time, newest first.
func (r *GoGitRepository) ListCommits(
	ctx context.Context,
	fromExclusive, toInclusive string,
) iter.Seq2[entities.RawCommit, error] {
	return func(yield func(entities.RawCommit, error) bool) {
		hidden, err := r.ancestors(fromExclusive)
		if err != nil {
			yield(entities.RawCommit{}, err)
			return
		}

		logIter, err := r.repo.Log(&git.LogOptions{
			From:  plumbing.NewHash(toInclusive),
			Order: git.LogOrderCommitterTime,
		})
		if err != nil {
			yield(entities.RawCommit{}, fmt.Errorf("walking history from %s: %w", toInclusive, err))
			return
		}
		defer logIter.Close()

		for {
			if ctxErr := ctx.Err(); ctxErr != nil {
				yield(entities.RawCommit{}, ctxErr)
				return
			}

			commit, nextErr := logIter.Next()
			if errors.Is(nextErr, io.EOF) {
				return
			}
			if nextErr != nil {
				yield(entities.RawCommit{}, fmt.Errorf("walking history: %w", nextErr))
				return
			}
			if _, skip := hidden[commit.Hash]; skip {
				continue
			}
			if !yield(toRawCommit(commit), nil) {
				return
			}
		}
	}
}

// RemoteURL returns the first URL of the named remote. A missing remote, or
// one without URLs, yields an empty string.
func (r *GoGitRepository) RemoteURL(_ context.Context, name string) (string, error) {
	var (
		rawURL string
		err    error
	)
	if name == originRemote {
		rawURL, err = gitInfra.GetRemoteRepoURL(r.repo)
	} else {
		rawURL, err = firstRemoteURL(r.repo, name)
	}

	switch {
	case errors.Is(err, git.ErrRemoteNotFound), errors.Is(err, gitInfra.ErrNoRemoteURL):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("reading remote %s: %w", name, err)
	}
	return rawURL, nil
}

func firstRemoteURL(repo *git.Repository, name string) (string, error) {
	remote, err := repo.Remote(name)
	if err != nil {
		return "", err
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", gitInfra.ErrNoRemoteURL
	}
	return urls[0], nil
}

// ancestors collects every commit reachable from commitID, itself included.
func (r *GoGitRepository) ancestors(commitID string) (map[plumbing.Hash]struct{}, error) {
	hidden := make(map[plumbing.Hash]struct{})
	if commitID == "" {
		return hidden, nil
	}

	logIter, err := r.repo.Log(&git.LogOptions{From: plumbing.NewHash(commitID)})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", commitID, err)
	}
	defer logIter.Close()

	err = logIter.ForEach(func(commit *object.Commit) error {
		hidden[commit.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", commitID, err)
	}
	return hidden, nil
}

func (r *GoGitRepository) commit(commitID string) (*object.Commit, error) {
	commit, err := r.repo.CommitObject(plumbing.NewHash(commitID))
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", commitID, err)
	}
	return commit, nil
}

func toRawCommit(commit *object.Commit) entities.RawCommit {
	return entities.RawCommit{
		ID:      commit.Hash.String(),
		Message: commit.Message,
		Author: &entities.Author{
			Name:  commit.Author.Name,
			Email: commit.Author.Email,
		},
	}
}
