package entities

import "errors"

var (
	// ErrRepositoryNotFound is returned when no git repository exists at the path.
	ErrRepositoryNotFound = errors.New("no git repository found")
	// ErrEmptyRepository is returned when the repository has no commits yet.
	ErrEmptyRepository = errors.New("repository has no commits")
	// ErrUnreadableHistory is returned when the commit history cannot be walked.
	ErrUnreadableHistory = errors.New("unable to read commit history")
	// ErrUnknownParser is returned for a parser strategy name nobody registered.
	ErrUnknownParser = errors.New("unknown parser strategy")
	// ErrInvalidPattern is returned when a regex override does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression")
	// ErrOverlappingTypeClasses is returned when a commit type is listed in more than one class.
	ErrOverlappingTypeClasses = errors.New("commit type listed in more than one class")
	// ErrInvalidBaseRef is returned when the explicit base ref does not resolve to a commit.
	ErrInvalidBaseRef = errors.New("base ref does not resolve to a commit")
	// ErrNoCommonAncestor is returned when two commits share no history.
	ErrNoCommonAncestor = errors.New("commits have no common ancestor")
	// ErrInvalidVersion is returned for strings that are not MAJOR.MINOR.PATCH.
	ErrInvalidVersion = errors.New("invalid version")
)
