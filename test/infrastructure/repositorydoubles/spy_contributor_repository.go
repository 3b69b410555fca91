//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/repositories"
)

// SpyContributorRepository implements repositories.ContributorRepository as a
// configurable spy.
type SpyContributorRepository struct {
	ProviderName string

	// --- ResolveHandle ---
	// Handles maps a lowercase email to a handle.
	Handles map[string]string
	// spy: commit IDs looked up, in call order
	LookedUp []string
}

var _ repositories.ContributorRepository = (*SpyContributorRepository)(nil)

func (s *SpyContributorRepository) Name() string { return s.ProviderName }

func (s *SpyContributorRepository) ResolveHandle(
	_ context.Context,
	author entities.Author,
	commitID string,
) (string, bool) {
	s.LookedUp = append(s.LookedUp, commitID)
	handle, ok := s.Handles[strings.ToLower(author.Email)]
	return handle, ok
}
