package entities

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultContributorTimeout = 10 * time.Second

// Settings is the optional file configuration. Command-line flags override it.
type Settings struct {
	Parser       string              `yaml:"parser"`
	Patterns     PatternSettings     `yaml:"patterns"`
	Types        TypeSettings        `yaml:"types"`
	Changelog    ChangelogSettings   `yaml:"changelog"`
	Contributors ContributorSettings `yaml:"contributors"`
}

// PatternSettings holds the custom-regex strategy overrides.
type PatternSettings struct {
	Type     string `yaml:"type"`
	Scope    string `yaml:"scope"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	Breaking string `yaml:"breaking"`
}

// TypeSettings lists commit types per class.
type TypeSettings struct {
	Major []string `yaml:"major"`
	Minor []string `yaml:"minor"`
	Noop  []string `yaml:"noop"`
}

// ChangelogSettings toggles rendering features. Nil means "use the default".
type ChangelogSettings struct {
	Contributors  *bool `yaml:"contributors"`
	HeaderScaling *bool `yaml:"header_scaling"`
	CompareLink   *bool `yaml:"compare_link"`
}

// ContributorSettings configures the hosting API used for attribution.
type ContributorSettings struct {
	// Provider is "github" or "gitlab"; empty detects it from the remote.
	Provider string `yaml:"provider"`
	// Token is inline, ${ENV_VAR}, or a file path.
	Token string `yaml:"token"`
	// BaseURL points at a self-hosted API endpoint.
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the configuration used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Parser: "conventional",
		Types: TypeSettings{
			Major: slices.Clone(DefaultMajorTypes),
			Minor: slices.Clone(DefaultMinorTypes),
			Noop:  slices.Clone(DefaultNoopTypes),
		},
		Contributors: ContributorSettings{Timeout: defaultContributorTimeout},
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and resolving token file paths. Missing keys keep their defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Contributors.Token = ResolveToken(settings.Contributors.Token)
	if settings.Contributors.Timeout <= 0 {
		settings.Contributors.Timeout = defaultContributorTimeout
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// TypeClasses builds the validated classification from the settings.
func (s *Settings) TypeClasses() (TypeClasses, error) {
	return NewTypeClasses(s.Types.Major, s.Types.Minor, s.Types.Noop)
}

func (s *Settings) validate() error {
	if strings.TrimSpace(s.Parser) == "" {
		return errors.New("parser must not be empty")
	}
	switch s.Contributors.Provider {
	case "", ProviderGitHub, ProviderGitLab:
	default:
		return fmt.Errorf("contributors.provider %q is not supported (github, gitlab)", s.Contributors.Provider)
	}
	_, err := s.TypeClasses()
	return err
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
