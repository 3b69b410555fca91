package repositories

import (
	"context"
	"iter"
	"regexp"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

// GitRepository is the read-only view of version control the analysis needs.
// Implementations never mutate the repository.
type GitRepository interface {
	// Head returns the commit HEAD points at. Returns entities.ErrEmptyRepository
	// when the repository has no commits.
	Head(ctx context.Context) (string, error)

	// ResolveRef resolves a tag, branch or hash to a commit.
	ResolveRef(ctx context.Context, ref string) (string, error)

	// ResolveTags returns every tag whose name matches the pattern, peeled to
	// its commit.
	ResolveTags(ctx context.Context, pattern *regexp.Regexp) ([]entities.Tag, error)

	// MergeBase returns the nearest common ancestor of two commits.
	MergeBase(ctx context.Context, commitA, commitB string) (string, error)

	// FirstParentRoot follows the first-parent chain from a commit to its root.
	FirstParentRoot(ctx context.Context, commitID string) (string, error)

	// ListCommits yields commits reachable from toInclusive and not from
	// fromExclusive, newest first. An empty fromExclusive walks the whole
	// history. Every call starts a fresh walk.
	ListCommits(ctx context.Context, fromExclusive, toInclusive string) iter.Seq2[entities.RawCommit, error]

	// RemoteURL returns the URL of the named remote, or "" when absent.
	RemoteURL(ctx context.Context, name string) (string, error)
}
