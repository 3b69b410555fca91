package entities

import (
	"fmt"
	"sort"
	"strings"
)

// TypeClasses holds the three disjoint sets of commit types that steer
// classification. Any type not listed is a patch.
type TypeClasses struct {
	major map[string]struct{}
	minor map[string]struct{}
	noop  map[string]struct{}
}

// DefaultMajorTypes, DefaultMinorTypes and DefaultNoopTypes are used when
// nothing is configured.
//
//nolint:gochecknoglobals // defaults
var (
	DefaultMajorTypes = []string{"major"}
	DefaultMinorTypes = []string{"feat", "minor"}
	DefaultNoopTypes  = []string{"chore", "noop"}
)

// NewTypeClasses validates that the three lists are disjoint.
func NewTypeClasses(major, minor, noop []string) (TypeClasses, error) {
	classes := TypeClasses{
		major: toSet(major),
		minor: toSet(minor),
		noop:  toSet(noop),
	}

	seen := make(map[string]string)
	for _, class := range []struct {
		name string
		set  map[string]struct{}
	}{
		{"major", classes.major},
		{"minor", classes.minor},
		{"noop", classes.noop},
	} {
		for _, commitType := range sortedKeys(class.set) {
			if previous, ok := seen[commitType]; ok {
				return TypeClasses{}, fmt.Errorf(
					"%w: %q is both %s and %s", ErrOverlappingTypeClasses, commitType, previous, class.name,
				)
			}
			seen[commitType] = class.name
		}
	}

	return classes, nil
}

// DefaultTypeClasses returns the built-in classification.
func DefaultTypeClasses() TypeClasses {
	classes, _ := NewTypeClasses(DefaultMajorTypes, DefaultMinorTypes, DefaultNoopTypes)
	return classes
}

func (c TypeClasses) IsMajor(commitType string) bool { return contains(c.major, commitType) }
func (c TypeClasses) IsMinor(commitType string) bool { return contains(c.minor, commitType) }
func (c TypeClasses) IsNoop(commitType string) bool  { return contains(c.noop, commitType) }

// SplitTypeList parses a comma-separated list such as "feat, minor".
func SplitTypeList(raw string) []string {
	var types []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			types = append(types, trimmed)
		}
	}
	return types
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			set[trimmed] = struct{}{}
		}
	}
	return set
}

func contains(set map[string]struct{}, value string) bool {
	if value == "" {
		return false
	}
	_, ok := set[value]
	return ok
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
