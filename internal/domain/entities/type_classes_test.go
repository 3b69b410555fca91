//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

func TestNewTypeClasses(t *testing.T) {
	t.Parallel()

	t.Run("should classify the default types", func(t *testing.T) {
		t.Parallel()

		// when
		classes := entities.DefaultTypeClasses()

		// then
		assert.True(t, classes.IsMajor("major"))
		assert.True(t, classes.IsMinor("feat"))
		assert.True(t, classes.IsMinor("minor"))
		assert.True(t, classes.IsNoop("chore"))
		assert.True(t, classes.IsNoop("noop"))
		assert.False(t, classes.IsMinor("fix"))
		assert.False(t, classes.IsNoop(""))
	})

	t.Run("should reject a type listed in two classes", func(t *testing.T) {
		t.Parallel()

		// given
		major := []string{"major"}
		minor := []string{"feat", "docs"}
		noop := []string{"docs"}

		// when
		_, err := entities.NewTypeClasses(major, minor, noop)

		// then
		require.ErrorIs(t, err, entities.ErrOverlappingTypeClasses)
		assert.Contains(t, err.Error(), `"docs"`)
	})

	t.Run("should accept empty classes", func(t *testing.T) {
		t.Parallel()

		// when
		classes, err := entities.NewTypeClasses(nil, nil, nil)

		// then
		require.NoError(t, err)
		assert.False(t, classes.IsMajor("major"))
	})
}

func TestSplitTypeList(t *testing.T) {
	t.Parallel()

	t.Run("should split and trim a comma separated list", func(t *testing.T) {
		t.Parallel()

		// when
		types := entities.SplitTypeList(" feat, minor ,,perf ")

		// then
		assert.Equal(t, []string{"feat", "minor", "perf"}, types)
	})

	t.Run("should return nothing for an empty list", func(t *testing.T) {
		t.Parallel()

		// when
		types := entities.SplitTypeList("")

		// then
		assert.Empty(t, types)
	})
}
