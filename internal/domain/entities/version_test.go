//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	t.Run("should parse a tag with the v prefix", func(t *testing.T) {
		t.Parallel()

		// given
		tag := "v1.2.3"

		// when
		version, err := entities.ParseVersion(tag)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.NewVersion(1, 2, 3), version)
		assert.Equal(t, "1.2.3", version.String())
		assert.Equal(t, "v1.2.3", version.Tag())
	})

	t.Run("should parse a bare version", func(t *testing.T) {
		t.Parallel()

		// given
		tag := "10.0.42"

		// when
		version, err := entities.ParseVersion(tag)

		// then
		require.NoError(t, err)
		assert.Equal(t, uint64(10), version.Major())
		assert.Equal(t, uint64(0), version.Minor())
		assert.Equal(t, uint64(42), version.Patch())
	})

	t.Run("should reject pre-release and malformed versions", func(t *testing.T) {
		t.Parallel()

		for _, tag := range []string{"v1.2.3-rc.1", "v1.2.3+build", "v1.2", "release-1", "", "v01.2.3"} {
			// when
			_, err := entities.ParseVersion(tag)

			// then
			require.ErrorIs(t, err, entities.ErrInvalidVersion, tag)
		}
	})
}

func TestVersion_Bump(t *testing.T) {
	t.Parallel()

	base := entities.NewVersion(1, 2, 3)

	t.Run("should bump major and reset minor and patch", func(t *testing.T) {
		t.Parallel()

		// when
		next := base.Bump(entities.VersionBump{Major: true, Minor: true, Patch: true})

		// then
		assert.Equal(t, entities.NewVersion(2, 0, 0), next)
	})

	t.Run("should bump minor and reset patch", func(t *testing.T) {
		t.Parallel()

		// when
		next := base.Bump(entities.VersionBump{Minor: true, Patch: true})

		// then
		assert.Equal(t, entities.NewVersion(1, 3, 0), next)
	})

	t.Run("should bump patch only", func(t *testing.T) {
		t.Parallel()

		// when
		next := base.Bump(entities.VersionBump{Patch: true})

		// then
		assert.Equal(t, entities.NewVersion(1, 2, 4), next)
	})

	t.Run("should keep the version when nothing is bumped", func(t *testing.T) {
		t.Parallel()

		// when
		next := base.Bump(entities.VersionBump{})

		// then
		assert.Equal(t, base, next)
	})

	t.Run("should leave the receiver untouched", func(t *testing.T) {
		t.Parallel()

		// when
		_ = base.Bump(entities.VersionBump{Major: true})

		// then
		assert.Equal(t, "1.2.3", base.String())
	})
}

func TestVersion_Compare(t *testing.T) {
	t.Parallel()

	t.Run("should order versions numerically", func(t *testing.T) {
		t.Parallel()

		// given
		low := entities.NewVersion(1, 9, 0)
		high := entities.NewVersion(1, 10, 0)

		// when / then
		assert.Equal(t, -1, low.Compare(high))
		assert.Equal(t, 1, high.Compare(low))
		assert.Equal(t, 0, high.Compare(entities.NewVersion(1, 10, 0)))
	})

	t.Run("should report the zero version", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.True(t, entities.ZeroVersion().IsZero())
		assert.False(t, entities.NewVersion(0, 0, 1).IsZero())
	})
}

func TestVersionBump_Merge(t *testing.T) {
	t.Parallel()

	t.Run("should accumulate flags and ignore noop", func(t *testing.T) {
		t.Parallel()

		// given
		var bump entities.VersionBump

		// when
		bump.Merge(entities.ChangeNoop)
		emptyAfterNoop := bump.IsEmpty()
		bump.Merge(entities.ChangePatch)
		bump.Merge(entities.ChangeMinor)

		// then
		assert.True(t, emptyAfterNoop)
		assert.Equal(t, entities.VersionBump{Minor: true, Patch: true}, bump)
	})
}
