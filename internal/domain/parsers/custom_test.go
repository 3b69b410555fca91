//go:build unit

package parsers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/parsers"
)

func TestCustomParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("should parse conventional messages with the default patterns", func(t *testing.T) {
		t.Parallel()

		// given
		parser, err := parsers.NewCustomParser(parsers.Patterns{})
		require.NoError(t, err)

		// when
		commit := parser.Parse("abc", "feat(api)!: drop v1")

		// then
		assert.Equal(t, "feat", commit.Type)
		assert.Equal(t, "api", commit.Scope)
		assert.Equal(t, "drop v1", commit.Title)
		assert.True(t, commit.HasBreakingChange)
	})

	t.Run("should detect a breaking body with the default patterns", func(t *testing.T) {
		t.Parallel()

		// given
		parser, err := parsers.NewCustomParser(parsers.Patterns{})
		require.NoError(t, err)

		// when
		commit := parser.Parse("abc", "fix: y\n\nBREAKING CHANGE: removed flag")

		// then
		assert.Equal(t, "fix", commit.Type)
		assert.True(t, commit.HasBreakingChange)
		assert.Equal(t, "removed flag", commit.Body)
	})

	t.Run("should use caller patterns and leave unmatched fields empty", func(t *testing.T) {
		t.Parallel()

		// given
		parser, err := parsers.NewCustomParser(parsers.Patterns{
			Type:     `^\[(\w+)\]`,
			Breaking: `(?m)^BREAKING$`,
		})
		require.NoError(t, err)

		// when
		commit := parser.Parse("abc", "[feature] add login")

		// then
		assert.Equal(t, "feature", commit.Type)
		assert.Empty(t, commit.Scope)
		assert.Equal(t, "[feature] add login", commit.Title)
		assert.False(t, commit.HasBreakingChange)
	})

	t.Run("should match the caller breaking pattern", func(t *testing.T) {
		t.Parallel()

		// given
		parser, err := parsers.NewCustomParser(parsers.Patterns{Breaking: `(?m)^BREAKING$`})
		require.NoError(t, err)

		// when
		commit := parser.Parse("abc", "update deps\n\nBREAKING")

		// then
		assert.True(t, commit.HasBreakingChange)
	})

	t.Run("should reject an invalid pattern", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := parsers.NewCustomParser(parsers.Patterns{Scope: `(unclosed`})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidPattern)
		assert.Contains(t, err.Error(), "scope")
	})
}
