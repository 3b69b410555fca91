package repositories

import (
	"context"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

// ContributorRepository maps a commit author to a hosting-platform handle.
type ContributorRepository interface {
	// Name returns the hosting platform identifier (e.g. "github").
	Name() string

	// ResolveHandle looks up the handle of the author of commitID. It returns
	// false when the author is unknown or the lookup failed; it never returns
	// an error so rendering is never blocked by attribution.
	ResolveHandle(ctx context.Context, author entities.Author, commitID string) (string, bool)
}
