package entities

// VersionBump accumulates which components must be incremented.
// Flags only ever go from false to true during a calculation pass.
type VersionBump struct {
	Major bool
	Minor bool
	Patch bool
}

// Merge ORs the given classification into the bump.
func (b *VersionBump) Merge(class ChangeClass) {
	switch class {
	case ChangeMajor:
		b.Major = true
	case ChangeMinor:
		b.Minor = true
	case ChangePatch:
		b.Patch = true
	case ChangeNoop:
	}
}

// IsEmpty reports whether no release is necessary.
func (b VersionBump) IsEmpty() bool {
	return !b.Major && !b.Minor && !b.Patch
}

// ChangeClass is the version effect of a single commit.
type ChangeClass string

const (
	ChangeMajor ChangeClass = "major"
	ChangeMinor ChangeClass = "minor"
	ChangePatch ChangeClass = "patch"
	ChangeNoop  ChangeClass = "noop"
)

// ChangesetSummary tallies classifications and keeps every commit in
// traversal order (newest first).
type ChangesetSummary struct {
	MajorCount uint
	MinorCount uint
	PatchCount uint
	NoopCount  uint
	Commits    []Commit
}

// Add records a classified commit.
func (s *ChangesetSummary) Add(commit Commit, class ChangeClass) {
	switch class {
	case ChangeMajor:
		s.MajorCount++
	case ChangeMinor:
		s.MinorCount++
	case ChangePatch:
		s.PatchCount++
	case ChangeNoop:
		s.NoopCount++
	}
	s.Commits = append(s.Commits, commit)
}

// IsEmpty reports whether no commits were collected.
func (s *ChangesetSummary) IsEmpty() bool {
	return len(s.Commits) == 0
}
