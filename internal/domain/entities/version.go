package entities

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is an immutable MAJOR.MINOR.PATCH triple.
type Version struct {
	major uint64
	minor uint64
	patch uint64
}

// NewVersion creates a version from its three components.
func NewVersion(major, minor, patch uint64) Version {
	return Version{major: major, minor: minor, patch: patch}
}

// ZeroVersion is the starting point of a repository without release tags.
func ZeroVersion() Version {
	return Version{}
}

// ParseVersion parses a tag such as "v1.2.3". The leading "v" is optional,
// pre-release and build metadata are rejected.
func ParseVersion(tag string) (Version, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(tag), "v")
	parsed, err := semver.StrictNewVersion(cleaned)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, tag, err)
	}
	if parsed.Prerelease() != "" || parsed.Metadata() != "" {
		return Version{}, fmt.Errorf("%w: %q has a pre-release or build suffix", ErrInvalidVersion, tag)
	}
	return Version{major: parsed.Major(), minor: parsed.Minor(), patch: parsed.Patch()}, nil
}

func (v Version) Major() uint64 { return v.major }
func (v Version) Minor() uint64 { return v.minor }
func (v Version) Patch() uint64 { return v.patch }

// IsZero reports whether the version is 0.0.0.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Compare returns -1, 0 or +1 comparing major, then minor, then patch.
func (v Version) Compare(other Version) int {
	switch {
	case v.major != other.major:
		return compareUint(v.major, other.major)
	case v.minor != other.minor:
		return compareUint(v.minor, other.minor)
	default:
		return compareUint(v.patch, other.patch)
	}
}

// Bump returns a new version with at most one component incremented:
// major beats minor beats patch. Without flags the receiver is returned.
func (v Version) Bump(bump VersionBump) Version {
	switch {
	case bump.Major:
		return Version{major: v.major + 1}
	case bump.Minor:
		return Version{major: v.major, minor: v.minor + 1}
	case bump.Patch:
		return Version{major: v.major, minor: v.minor, patch: v.patch + 1}
	default:
		return v
	}
}

// String renders the version without the "v" prefix.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// Tag renders the version as a release tag ("v1.2.3").
func (v Version) Tag() string {
	return "v" + v.String()
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
