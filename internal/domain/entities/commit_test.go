//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

func TestCommit_Lines(t *testing.T) {
	t.Parallel()

	t.Run("should split the headline from the body lines", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entities.Commit{RawMessage: "feat: add thing  \r\n\r\nfirst\r\n\r\nsecond\r\n\r\n"}

		// when
		headline := commit.HeadLine()
		body := commit.BodyLines()

		// then
		assert.Equal(t, "feat: add thing", headline)
		assert.Equal(t, []string{"first", "", "second"}, body)
	})

	t.Run("should have no body lines for a one-line message", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entities.Commit{RawMessage: "fix: typo"}

		// when / then
		assert.Equal(t, "fix: typo", commit.HeadLine())
		assert.Empty(t, commit.BodyLines())
	})
}

func TestAuthor_Key(t *testing.T) {
	t.Parallel()

	t.Run("should ignore case and surrounding spaces", func(t *testing.T) {
		t.Parallel()

		// given
		first := entities.Author{Name: "Jane Doe", Email: "Jane@Example.com"}
		second := entities.Author{Name: " jane doe", Email: "jane@example.com "}

		// when / then
		assert.Equal(t, first.Key(), second.Key())
		assert.False(t, first.IsEmpty())
		assert.True(t, entities.Author{}.IsEmpty())
	})
}

func TestChangesetSummary_Add(t *testing.T) {
	t.Parallel()

	t.Run("should count each class and keep commit order", func(t *testing.T) {
		t.Parallel()

		// given
		summary := &entities.ChangesetSummary{}

		// when
		summary.Add(entities.Commit{ID: "a"}, entities.ChangeMinor)
		summary.Add(entities.Commit{ID: "b"}, entities.ChangeNoop)
		summary.Add(entities.Commit{ID: "c"}, entities.ChangeMinor)

		// then
		assert.Equal(t, uint(2), summary.MinorCount)
		assert.Equal(t, uint(1), summary.NoopCount)
		assert.Zero(t, summary.MajorCount)
		assert.Len(t, summary.Commits, 3)
		assert.Equal(t, "c", summary.Commits[2].ID)
		assert.False(t, summary.IsEmpty())
	})
}
