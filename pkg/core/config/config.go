package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	sherror "github.com/msto63/strhelp/foundation/core/error"
	"github.com/msto63/strhelp/foundation/core/log"
	"github.com/msto63/strhelp/foundation/utils/strhelp"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "STRHELP_CONFIG"

// Ignore presets accepted by GroupingConfig.Ignore
const (
	IgnoreDefault = "default"
	IgnorePath    = "path"
	IgnoreNone    = "none"
)

// Output formats accepted by OutputConfig.Format
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the complete command line configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Grouping GroupingConfig `toml:"grouping" yaml:"grouping"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Cache    CacheConfig    `toml:"cache" yaml:"cache"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// GroupingConfig holds defaults for the group commands
type GroupingConfig struct {
	// Ignore selects a preset ignore set; IgnoreChars overrides it when set
	Ignore      string `toml:"ignore" yaml:"ignore"`
	IgnoreChars string `toml:"ignore_chars" yaml:"ignore_chars"`
	Leading     int    `toml:"leading" yaml:"leading"`
	NumGroups   int    `toml:"num_groups" yaml:"num_groups"`
	GroupSize   int    `toml:"group_size" yaml:"group_size"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format  string `toml:"format" yaml:"format"`
	NoColor bool   `toml:"no_color" yaml:"no_color"`
}

// CacheConfig holds compiled-regex cache settings
type CacheConfig struct {
	MaxPatterns int `toml:"max_patterns" yaml:"max_patterns"`
}

// IgnoreSet resolves the configured ignore characters
func (g GroupingConfig) IgnoreSet() string {
	if g.IgnoreChars != "" {
		return g.IgnoreChars
	}
	switch g.Ignore {
	case IgnorePath:
		return strhelp.PathNonRelevantChars
	case IgnoreNone:
		return ""
	default:
		return strhelp.DefaultNonRelevantChars
	}
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sherror.Newf("config file not found: %s", path).
				WithCode(sherror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, sherror.Wrap(err, "failed to read config").
			WithCode(sherror.CodeConfigInvalid).
			WithOperation("config.Load")
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		_, err = toml.Decode(string(content), &cfg)
	}
	if err != nil {
		return nil, sherror.Wrap(err, "failed to parse config").
			WithCode(sherror.CodeConfigInvalid).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from the STRHELP_CONFIG environment
// variable or the first existing default location. It returns an error with
// CodeNotFound when no file exists.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, sherror.New("no config file found, set " + EnvConfigPath + " or create configs/strhelp.toml").
			WithCode(sherror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// DefaultPaths returns the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	return []string{
		"./configs/strhelp.toml",
		"./strhelp.toml",
		filepath.Join(os.Getenv("HOME"), ".config/strhelp/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "strhelp"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Grouping
	if c.Grouping.Ignore == "" {
		c.Grouping.Ignore = IgnoreDefault
	}
	if c.Grouping.NumGroups == 0 {
		c.Grouping.NumGroups = 4
	}
	if c.Grouping.GroupSize == 0 {
		c.Grouping.GroupSize = 10
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = OutputText
	}

	// Cache
	if c.Cache.MaxPatterns == 0 {
		c.Cache.MaxPatterns = 512
	}
}

// Validate checks the configuration and returns an error with
// CodeConfigInvalid naming the first offending field
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}

	switch c.Grouping.Ignore {
	case IgnoreDefault, IgnorePath, IgnoreNone:
	default:
		return invalid("grouping.ignore", c.Grouping.Ignore, "expected default, path or none")
	}
	if c.Grouping.NumGroups < 0 {
		return invalid("grouping.num_groups", c.Grouping.NumGroups, "must be positive")
	}
	if c.Grouping.GroupSize < 0 {
		return invalid("grouping.group_size", c.Grouping.GroupSize, "must be positive")
	}

	switch c.Output.Format {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return invalid("output.format", c.Output.Format, "expected text, json or yaml")
	}

	if c.Cache.MaxPatterns < 0 {
		return invalid("cache.max_patterns", c.Cache.MaxPatterns, "must be positive")
	}

	return nil
}

func invalid(field string, value interface{}, reason string) error {
	return sherror.Newf("invalid %s: %s", field, reason).
		WithCode(sherror.CodeConfigInvalid).
		WithOperation("config.Validate").
		WithDetail("field", field).
		WithDetail("value", value)
}
