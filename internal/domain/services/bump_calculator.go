package services

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/parsers"
	"github.com/rios0rios0/nextver/internal/domain/repositories"
)

// BumpCalculator folds the commits of a range into a version bump.
type BumpCalculator struct{}

// NewBumpCalculator creates a new BumpCalculator.
func NewBumpCalculator() *BumpCalculator {
	return &BumpCalculator{}
}

// Calculate walks the commits after base up to head (newest first), parses
// each one and accumulates the bump and the summary.
func (it *BumpCalculator) Calculate(
	ctx context.Context,
	repo repositories.GitRepository,
	base entities.BaseCommit,
	parser parsers.CommitParser,
	classes entities.TypeClasses,
) (entities.VersionBump, *entities.ChangesetSummary, error) {
	var bump entities.VersionBump
	summary := &entities.ChangesetSummary{}

	logger.Debugf("Calculating version bump using parser: %s", parser.Name())

	for raw, err := range repo.ListCommits(ctx, base.FromExclusive(), base.HeadID) {
		if err != nil {
			return entities.VersionBump{}, nil, fmt.Errorf("%w: %w", entities.ErrUnreadableHistory, err)
		}

		commit := parser.Parse(raw.ID, raw.Message)
		commit.Author = raw.Author

		class := Classify(commit, classes)
		bump.Merge(class)
		summary.Add(commit, class)

		logger.Debugf("Detected %s change in commit %s: %s", class, raw.ID, commit.HeadLine())
	}

	logger.Debugf(
		"Version bump: major=%t, minor=%t, patch=%t (%d major, %d minor, %d patch, %d no-op)",
		bump.Major, bump.Minor, bump.Patch,
		summary.MajorCount, summary.MinorCount, summary.PatchCount, summary.NoopCount,
	)
	return bump, summary, nil
}

// Classify decides the version effect of a single commit. Breaking changes
// win over the type; unknown and empty types are patches.
func Classify(commit entities.Commit, classes entities.TypeClasses) entities.ChangeClass {
	switch {
	case commit.HasBreakingChange:
		return entities.ChangeMajor
	case classes.IsMajor(commit.Type):
		return entities.ChangeMajor
	case classes.IsMinor(commit.Type):
		return entities.ChangeMinor
	case classes.IsNoop(commit.Type):
		return entities.ChangeNoop
	default:
		return entities.ChangePatch
	}
}
