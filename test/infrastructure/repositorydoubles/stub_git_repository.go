//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"iter"
	"regexp"
	"slices"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/repositories"
)

// StubCommit is one node of the in-memory history.
type StubCommit struct {
	ID      string
	Message string
	Author  *entities.Author
	Parents []string
}

// StubGitRepository implements repositories.GitRepository over an in-memory
// history. Commits are appended oldest first and listed newest first.
type StubGitRepository struct {
	commits map[string]StubCommit
	order   []string
	head    string
	tags    []entities.Tag
	remotes map[string]string
	refs    map[string]string

	// --- errors ---
	ListErr   error
	RemoteErr error

	// --- spy ---
	ListCalls int
}

var _ repositories.GitRepository = (*StubGitRepository)(nil)

// NewStubGitRepository creates an empty repository.
func NewStubGitRepository() *StubGitRepository {
	return &StubGitRepository{
		commits: make(map[string]StubCommit),
		remotes: make(map[string]string),
		refs:    make(map[string]string),
	}
}

// Commit appends a commit and moves HEAD to it. Without explicit parents the
// previous HEAD is used.
func (s *StubGitRepository) Commit(id, message string, parents ...string) *StubGitRepository {
	return s.CommitBy(id, message, nil, parents...)
}

// CommitBy is Commit with an author.
func (s *StubGitRepository) CommitBy(
	id, message string,
	author *entities.Author,
	parents ...string,
) *StubGitRepository {
	if len(parents) == 0 && s.head != "" {
		parents = []string{s.head}
	}
	s.commits[id] = StubCommit{ID: id, Message: message, Author: author, Parents: parents}
	s.order = append(s.order, id)
	s.head = id
	return s
}

// Orphan appends a parentless commit, starting an unrelated history, and moves HEAD to it.
func (s *StubGitRepository) Orphan(id, message string) *StubGitRepository {
	s.commits[id] = StubCommit{ID: id, Message: message}
	s.order = append(s.order, id)
	s.head = id
	return s
}

// Tag points a tag at a commit.
func (s *StubGitRepository) Tag(name, commitID string) *StubGitRepository {
	s.tags = append(s.tags, entities.Tag{Name: name, CommitID: commitID})
	s.refs[name] = commitID
	return s
}

// Ref registers a branch or other resolvable name.
func (s *StubGitRepository) Ref(name, commitID string) *StubGitRepository {
	s.refs[name] = commitID
	return s
}

// Checkout moves HEAD.
func (s *StubGitRepository) Checkout(commitID string) *StubGitRepository {
	s.head = commitID
	return s
}

// Remote registers a remote URL.
func (s *StubGitRepository) Remote(name, url string) *StubGitRepository {
	s.remotes[name] = url
	return s
}

func (s *StubGitRepository) Head(_ context.Context) (string, error) {
	if s.head == "" {
		return "", entities.ErrEmptyRepository
	}
	return s.head, nil
}

func (s *StubGitRepository) ResolveRef(_ context.Context, ref string) (string, error) {
	if id, ok := s.refs[ref]; ok {
		return id, nil
	}
	if _, ok := s.commits[ref]; ok {
		return ref, nil
	}
	return "", fmt.Errorf("reference not found: %s", ref)
}

func (s *StubGitRepository) ResolveTags(_ context.Context, pattern *regexp.Regexp) ([]entities.Tag, error) {
	var tags []entities.Tag
	for _, tag := range s.tags {
		if pattern.MatchString(tag.Name) {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (s *StubGitRepository) MergeBase(_ context.Context, commitA, commitB string) (string, error) {
	ancestorsOfA := s.ancestors(commitA)
	ancestorsOfB := s.ancestors(commitB)
	for i := len(s.order) - 1; i >= 0; i-- {
		id := s.order[i]
		if ancestorsOfA[id] && ancestorsOfB[id] {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %s and %s", entities.ErrNoCommonAncestor, commitA, commitB)
}

func (s *StubGitRepository) FirstParentRoot(_ context.Context, commitID string) (string, error) {
	current, ok := s.commits[commitID]
	if !ok {
		return "", fmt.Errorf("commit not found: %s", commitID)
	}
	for len(current.Parents) > 0 {
		current = s.commits[current.Parents[0]]
	}
	return current.ID, nil
}

func (s *StubGitRepository) ListCommits(
	ctx context.Context,
	fromExclusive, toInclusive string,
) iter.Seq2[entities.RawCommit, error] {
	s.ListCalls++
	return func(yield func(entities.RawCommit, error) bool) {
		if s.ListErr != nil {
			yield(entities.RawCommit{}, s.ListErr)
			return
		}

		hidden := map[string]bool{}
		if fromExclusive != "" {
			hidden = s.ancestors(fromExclusive)
		}
		visible := s.ancestors(toInclusive)

		for _, id := range slices.Backward(s.order) {
			if ctx.Err() != nil {
				yield(entities.RawCommit{}, ctx.Err())
				return
			}
			if !visible[id] || hidden[id] {
				continue
			}
			commit := s.commits[id]
			if !yield(entities.RawCommit{ID: id, Message: commit.Message, Author: commit.Author}, nil) {
				return
			}
		}
	}
}

func (s *StubGitRepository) RemoteURL(_ context.Context, name string) (string, error) {
	if s.RemoteErr != nil {
		return "", s.RemoteErr
	}
	return s.remotes[name], nil
}

func (s *StubGitRepository) ancestors(id string) map[string]bool {
	seen := map[string]bool{}
	pending := []string{id}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if current == "" || seen[current] {
			continue
		}
		seen[current] = true
		pending = append(pending, s.commits[current].Parents...)
	}
	return seen
}
