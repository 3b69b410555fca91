package entities

// Tag is a release tag peeled to the commit it points at.
type Tag struct {
	Name     string
	CommitID string
}

// BaseCommit is the starting point of the analysed range.
type BaseCommit struct {
	// CommitID is the base commit. It is excluded from the range unless
	// Inclusive is set.
	CommitID string
	// Inclusive is set when the base is the repository root found without
	// any release tag, so the root commit itself counts.
	Inclusive bool
	// HeadID is the commit the range ends at (inclusive).
	HeadID string
	// Version is the version the next one is bumped from.
	Version Version
	// Tag is the release tag the version was read from, empty when none.
	Tag string
}

// FromExclusive returns the commit to hide from the walk, or "" to walk the
// whole history reachable from HEAD.
func (b BaseCommit) FromExclusive() string {
	if b.Inclusive {
		return ""
	}
	return b.CommitID
}
