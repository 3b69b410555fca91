package controllers

import (
	"github.com/rios0rios0/gitforge/pkg/config/domain/helpers"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/nextver/internal/domain/commands"
	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/domain/parsers"
	"github.com/rios0rios0/nextver/internal/domain/services"
)

const appName = "nextver"

// AddSharedFlags registers the flags every command understands.
func AddSharedFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "Path to config file (default: auto-detect)")
	flags.BoolP("verbose", "v", false, "Enable verbose output")
	flags.String("from", "", "Explicit base ref (tag, branch or commit) instead of the latest release tag")

	flags.String("parser", parsers.StrategyConventional,
		"Commit parser strategy (conventional, custom)")
	flags.String("type-pattern", "", "Custom parser: regex capturing the commit type in group 1")
	flags.String("scope-pattern", "", "Custom parser: regex capturing the scope in group 1")
	flags.String("title-pattern", "", "Custom parser: regex capturing the title in group 1")
	flags.String("body-pattern", "", "Custom parser: regex capturing the body in group 1")
	flags.String("breaking-pattern", "", "Custom parser: regex matching breaking changes")

	flags.String("major-types", "major", "Comma-separated commit types that bump the major version")
	flags.String("minor-types", "feat,minor", "Comma-separated commit types that bump the minor version")
	flags.String("noop-types", "chore,noop", "Comma-separated commit types that do not bump the version")

	flags.Bool("no-contributors", false, "Do not resolve contributor handles in the changelog")
	flags.Bool("no-header-scaling", false,
		"Disable header scaling in the changelog (by default, h1->h4, h2->h5, h3->h6)")
	flags.Bool("no-compare-link", false, "Do not append the version comparison link to the changelog")
	flags.String("token", "", "Auth token for the hosting API (overrides env var detection)")
}

// buildOptions merges the config file and the command-line flags. Flags win.
func buildOptions(cmd *cobra.Command, args []string) (commands.Options, error) {
	flags := cmd.Flags()

	if verbose, _ := flags.GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := loadSettings(flags)
	if err != nil {
		return commands.Options{}, err
	}
	applyFlagOverrides(flags, settings)

	classes, err := settings.TypeClasses()
	if err != nil {
		return commands.Options{}, err
	}

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}
	baseRef, _ := flags.GetString("from")

	return commands.Options{
		RepoDir: repoDir,
		Parser:  settings.Parser,
		Patterns: parsers.Patterns{
			Type:     settings.Patterns.Type,
			Scope:    settings.Patterns.Scope,
			Title:    settings.Patterns.Title,
			Body:     settings.Patterns.Body,
			Breaking: settings.Patterns.Breaking,
		},
		Classes:             classes,
		BaseRef:             baseRef,
		Render:              renderOptions(flags, settings),
		ContributorProvider: settings.Contributors.Provider,
		Token:               settings.Contributors.Token,
		BaseURL:             settings.Contributors.BaseURL,
		Timeout:             settings.Contributors.Timeout,
	}, nil
}

func loadSettings(flags *pflag.FlagSet) (*entities.Settings, error) {
	cfgPath, _ := flags.GetString("config")
	if cfgPath == "" {
		found, err := helpers.FindConfigFile(appName)
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return entities.DefaultSettings(), nil
		}
		cfgPath = found
	}

	logger.Debugf("Using config file: %s", cfgPath)
	return entities.NewSettings(cfgPath)
}

func applyFlagOverrides(flags *pflag.FlagSet, settings *entities.Settings) {
	overrideString(flags, "parser", &settings.Parser)
	overrideString(flags, "type-pattern", &settings.Patterns.Type)
	overrideString(flags, "scope-pattern", &settings.Patterns.Scope)
	overrideString(flags, "title-pattern", &settings.Patterns.Title)
	overrideString(flags, "body-pattern", &settings.Patterns.Body)
	overrideString(flags, "breaking-pattern", &settings.Patterns.Breaking)
	overrideString(flags, "token", &settings.Contributors.Token)

	overrideTypes(flags, "major-types", &settings.Types.Major)
	overrideTypes(flags, "minor-types", &settings.Types.Minor)
	overrideTypes(flags, "noop-types", &settings.Types.Noop)
}

func renderOptions(flags *pflag.FlagSet, settings *entities.Settings) services.RenderOptions {
	options := services.RenderOptions{
		Contributors:  boolOr(settings.Changelog.Contributors, true),
		HeaderScaling: boolOr(settings.Changelog.HeaderScaling, true),
		CompareLink:   boolOr(settings.Changelog.CompareLink, true),
	}
	if disabled, _ := flags.GetBool("no-contributors"); disabled {
		options.Contributors = false
	}
	if disabled, _ := flags.GetBool("no-header-scaling"); disabled {
		options.HeaderScaling = false
	}
	if disabled, _ := flags.GetBool("no-compare-link"); disabled {
		options.CompareLink = false
	}
	return options
}

func overrideString(flags *pflag.FlagSet, name string, target *string) {
	if flags.Changed(name) {
		*target, _ = flags.GetString(name)
	}
}

func overrideTypes(flags *pflag.FlagSet, name string, target *[]string) {
	if flags.Changed(name) {
		raw, _ := flags.GetString(name)
		*target = entities.SplitTypeList(raw)
	}
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
