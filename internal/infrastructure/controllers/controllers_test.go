//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/parsers"
	"github.com/rios0rios0/nextver/internal/infrastructure/controllers"
	"github.com/rios0rios0/nextver/test/domain/commanddoubles"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".nextver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, controller entities.Controller, args ...string) (string, error) {
	t.Helper()
	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          controller.Execute,
	}
	controllers.AddSharedFlags(cmd.PersistentFlags())
	controller.AddFlags(cmd)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type stubs struct {
	next      *commanddoubles.StubNextVersionCommand
	current   *commanddoubles.StubCurrentVersionCommand
	changelog *commanddoubles.StubChangelogCommand
}

func newVersionController() (*controllers.VersionController, stubs) {
	s := stubs{
		next:      &commanddoubles.StubNextVersionCommand{Version: entities.NewVersion(1, 3, 0)},
		current:   &commanddoubles.StubCurrentVersionCommand{Version: entities.NewVersion(1, 2, 0)},
		changelog: &commanddoubles.StubChangelogCommand{Markdown: "### What's changed in v1.3.0\n\n* feat: b\n"},
	}
	return controllers.NewVersionController(s.next, s.current, s.changelog), s
}

func TestVersionController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should print the next version", func(t *testing.T) {
		t.Parallel()

		// given
		controller, s := newVersionController()
		config := writeConfig(t, "parser: conventional\n")

		// when
		out, err := run(t, controller, "--config", config, "/some/repo")

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.3.0\n", out)
		assert.Equal(t, 1, s.next.ExecuteCallCount)
		assert.Equal(t, "/some/repo", s.next.LastOpts.RepoDir)
		assert.Equal(t, parsers.StrategyConventional, s.next.LastOpts.Parser)
		assert.True(t, s.next.LastOpts.Render.HeaderScaling)
	})

	t.Run("should print the current version", func(t *testing.T) {
		t.Parallel()

		// given
		controller, s := newVersionController()
		config := writeConfig(t, "parser: conventional\n")

		// when
		out, err := run(t, controller, "--config", config, "--current")

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.2.0\n", out)
		assert.Equal(t, ".", s.current.LastOpts.RepoDir)
		assert.Zero(t, s.next.ExecuteCallCount)
	})

	t.Run("should print the changelog", func(t *testing.T) {
		t.Parallel()

		// given
		controller, s := newVersionController()
		config := writeConfig(t, "parser: conventional\n")

		// when
		out, err := run(t, controller, "--config", config, "--changelog", "--no-header-scaling", "--no-compare-link")

		// then
		require.NoError(t, err)
		assert.Equal(t, "### What's changed in v1.3.0\n\n* feat: b\n", out)
		assert.False(t, s.changelog.LastOpts.Render.HeaderScaling)
		assert.False(t, s.changelog.LastOpts.Render.CompareLink)
		assert.True(t, s.changelog.LastOpts.Render.Contributors)
	})

	t.Run("should let flags override the config file", func(t *testing.T) {
		t.Parallel()

		// given
		controller, s := newVersionController()
		config := writeConfig(t, `
parser: conventional
types:
  minor: [feat]
contributors:
  token: from-file
changelog:
  contributors: false
`)

		// when
		_, err := run(t, controller,
			"--config", config,
			"--parser", "custom",
			"--type-pattern", `^\[(\w+)\]`,
			"--minor-types", "feature, perf",
			"--token", "from-flag",
			"--from", "v1.0.0",
		)

		// then
		require.NoError(t, err)
		opts := s.next.LastOpts
		assert.Equal(t, parsers.StrategyCustom, opts.Parser)
		assert.Equal(t, `^\[(\w+)\]`, opts.Patterns.Type)
		assert.True(t, opts.Classes.IsMinor("perf"))
		assert.False(t, opts.Classes.IsMinor("feat"))
		assert.Equal(t, "from-flag", opts.Token)
		assert.Equal(t, "v1.0.0", opts.BaseRef)
		assert.False(t, opts.Render.Contributors)
	})

	t.Run("should reject overlapping type flags", func(t *testing.T) {
		t.Parallel()

		// given
		controller, s := newVersionController()
		config := writeConfig(t, "parser: conventional\n")

		// when
		_, err := run(t, controller, "--config", config, "--noop-types", "feat")

		// then
		require.ErrorIs(t, err, entities.ErrOverlappingTypeClasses)
		assert.Zero(t, s.next.ExecuteCallCount)
	})

	t.Run("should return command errors", func(t *testing.T) {
		t.Parallel()

		// given
		controller, s := newVersionController()
		s.next.ExecuteErr = errors.New("boom")
		config := writeConfig(t, "parser: conventional\n")

		// when
		out, err := run(t, controller, "--config", config)

		// then
		require.EqualError(t, err, "boom")
		assert.Empty(t, out)
	})
}

func TestChangelogController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should print the changelog of the given repository", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubChangelogCommand{Markdown: "### What's changed in v0.1.0\n\n* No changes\n"}
		controller := controllers.NewChangelogController(stub)
		config := writeConfig(t, "parser: conventional\n")

		// when
		out, err := run(t, controller, "--config", config, "repo")

		// then
		require.NoError(t, err)
		assert.Equal(t, "### What's changed in v0.1.0\n\n* No changes\n", out)
		assert.Equal(t, "repo", stub.LastOpts.RepoDir)
	})
}

func TestCurrentController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should print the current version", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCurrentVersionCommand{Version: entities.NewVersion(0, 4, 2)}
		controller := controllers.NewCurrentController(stub)
		config := writeConfig(t, "parser: conventional\n")

		// when
		out, err := run(t, controller, "--config", config)

		// then
		require.NoError(t, err)
		assert.Equal(t, "0.4.2\n", out)
	})

	t.Run("should fail on an unreadable config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCurrentVersionCommand{}
		controller := controllers.NewCurrentController(stub)

		// when
		_, err := run(t, controller, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

//nolint:paralleltest // t.Chdir is incompatible with t.Parallel
func TestVersionController_ConfigDiscovery(t *testing.T) {
	t.Run("should pick up .nextver.yaml from the working directory", func(t *testing.T) {
		// given
		dir := filepath.Dir(writeConfig(t, "types:\n  minor: [feat, feature]\n"))
		t.Chdir(dir)
		controller, s := newVersionController()

		// when
		_, err := run(t, controller)

		// then
		require.NoError(t, err)
		assert.True(t, s.next.LastOpts.Classes.IsMinor("feature"))
	})
}
