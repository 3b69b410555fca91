//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/infrastructure/controllers"
	"github.com/rios0rios0/nextver/test/domain/commanddoubles"
)

func TestBuildRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should route subcommands to their controllers", func(t *testing.T) {
		t.Parallel()

		// given
		next := &commanddoubles.StubNextVersionCommand{Version: entities.NewVersion(2, 0, 0)}
		current := &commanddoubles.StubCurrentVersionCommand{Version: entities.NewVersion(1, 9, 9)}
		changelog := &commanddoubles.StubChangelogCommand{Markdown: "changes\n"}
		root := buildRootCommand(controllers.NewVersionController(next, current, changelog))
		addSubcommands(root, []entities.Controller{
			controllers.NewChangelogController(changelog),
			controllers.NewCurrentController(current),
		})
		config := filepath.Join(t.TempDir(), "nextver.yaml")
		require.NoError(t, os.WriteFile(config, []byte("parser: conventional\n"), 0o600))

		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"current", "--config", config, "."})

		// when
		err := root.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.9.9\n", out.String())
		assert.Equal(t, 1, current.ExecuteCallCount)
		assert.Zero(t, next.ExecuteCallCount)
	})

	t.Run("should reject more than one path", func(t *testing.T) {
		t.Parallel()

		// given
		root := buildRootCommand(controllers.NewVersionController(
			&commanddoubles.StubNextVersionCommand{},
			&commanddoubles.StubCurrentVersionCommand{},
			&commanddoubles.StubChangelogCommand{},
		))
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"a", "b"})

		// when
		err := root.Execute()

		// then
		require.Error(t, err)
	})
}
