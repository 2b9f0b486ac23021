package config

import (
	"os"
	"path/filepath"
	"testing"

	sherror "github.com/msto63/strhelp/foundation/core/error"
	"github.com/msto63/strhelp/foundation/utils/strhelp"
)

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.General.Name != "strhelp" {
		t.Errorf("General.Name = %v, want strhelp", cfg.General.Name)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Grouping.Ignore != IgnoreDefault {
		t.Errorf("Grouping.Ignore = %v, want %v", cfg.Grouping.Ignore, IgnoreDefault)
	}
	if cfg.Grouping.NumGroups != 4 {
		t.Errorf("Grouping.NumGroups = %v, want 4", cfg.Grouping.NumGroups)
	}
	if cfg.Grouping.GroupSize != 10 {
		t.Errorf("Grouping.GroupSize = %v, want 10", cfg.Grouping.GroupSize)
	}
	if cfg.Grouping.Leading != 0 {
		t.Errorf("Grouping.Leading = %v, want 0", cfg.Grouping.Leading)
	}
	if cfg.Output.Format != OutputText {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, OutputText)
	}
	if cfg.Cache.MaxPatterns != 512 {
		t.Errorf("Cache.MaxPatterns = %v, want 512", cfg.Cache.MaxPatterns)
	}
}

func TestConfig_applyDefaultsKeepsValues(t *testing.T) {
	cfg := &Config{
		General:  GeneralConfig{LogLevel: "debug"},
		Grouping: GroupingConfig{NumGroups: 7, Leading: -3},
		Output:   OutputConfig{Format: OutputJSON},
	}
	cfg.applyDefaults()

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Grouping.NumGroups != 7 || cfg.Grouping.Leading != -3 {
		t.Errorf("Grouping = %+v", cfg.Grouping)
	}
	if cfg.Output.Format != OutputJSON {
		t.Errorf("Output.Format = %v, want json", cfg.Output.Format)
	}
}

func TestGroupingConfig_IgnoreSet(t *testing.T) {
	tests := []struct {
		name     string
		grouping GroupingConfig
		expected string
	}{
		{"default preset", GroupingConfig{Ignore: IgnoreDefault}, strhelp.DefaultNonRelevantChars},
		{"path preset", GroupingConfig{Ignore: IgnorePath}, strhelp.PathNonRelevantChars},
		{"none preset", GroupingConfig{Ignore: IgnoreNone}, ""},
		{"custom characters win", GroupingConfig{Ignore: IgnoreNone, IgnoreChars: "_-"}, "_-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grouping.IgnoreSet(); got != tt.expected {
				t.Errorf("IgnoreSet() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad log level", func(c *Config) { c.General.LogLevel = "loud" }, true},
		{"bad log format", func(c *Config) { c.General.LogFormat = "xml" }, true},
		{"bad ignore preset", func(c *Config) { c.Grouping.Ignore = "some" }, true},
		{"negative groups", func(c *Config) { c.Grouping.NumGroups = -1 }, true},
		{"negative size", func(c *Config) { c.Grouping.GroupSize = -2 }, true},
		{"bad output", func(c *Config) { c.Output.Format = "csv" }, true},
		{"yaml output", func(c *Config) { c.Output.Format = OutputYAML }, false},
		{"negative cache", func(c *Config) { c.Cache.MaxPatterns = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()

			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !sherror.HasCode(err, sherror.CodeConfigInvalid) {
				t.Errorf("Validate() code = %v, want %v", sherror.GetCode(err), sherror.CodeConfigInvalid)
			}
		})
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "strhelp.toml")

	content := `
[general]
log_level = "debug"

[grouping]
ignore = "path"
leading = 4
num_groups = 3

[output]
format = "json"
no_color = true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Grouping.IgnoreSet() != strhelp.PathNonRelevantChars {
		t.Errorf("IgnoreSet() = %q", cfg.Grouping.IgnoreSet())
	}
	if cfg.Grouping.Leading != 4 || cfg.Grouping.NumGroups != 3 {
		t.Errorf("Grouping = %+v", cfg.Grouping)
	}
	if cfg.Grouping.GroupSize != 10 {
		t.Errorf("Grouping.GroupSize = %v, want default 10", cfg.Grouping.GroupSize)
	}
	if cfg.Output.Format != OutputJSON || !cfg.Output.NoColor {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "strhelp.yaml")

	content := `
grouping:
  ignore_chars: "_."
  group_size: 25
output:
  format: yaml
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Grouping.IgnoreSet() != "_." {
		t.Errorf("IgnoreSet() = %q, want %q", cfg.Grouping.IgnoreSet(), "_.")
	}
	if cfg.Grouping.GroupSize != 25 {
		t.Errorf("Grouping.GroupSize = %v, want 25", cfg.Grouping.GroupSize)
	}
	if cfg.Output.Format != OutputYAML {
		t.Errorf("Output.Format = %v, want yaml", cfg.Output.Format)
	}
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(filepath.Join(tmpDir, "missing.toml"))
	if !sherror.HasCode(err, sherror.CodeNotFound) {
		t.Errorf("missing file: error = %v, want %v", err, sherror.CodeNotFound)
	}

	broken := filepath.Join(tmpDir, "broken.toml")
	if err := os.WriteFile(broken, []byte("[general\nlog_level ="), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	_, err = Load(broken)
	if !sherror.HasCode(err, sherror.CodeConfigInvalid) {
		t.Errorf("broken file: error = %v, want %v", err, sherror.CodeConfigInvalid)
	}

	invalidValues := filepath.Join(tmpDir, "invalid.toml")
	if err := os.WriteFile(invalidValues, []byte("[output]\nformat = \"csv\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	_, err = Load(invalidValues)
	if !sherror.HasCode(err, sherror.CodeConfigInvalid) {
		t.Errorf("invalid values: error = %v, want %v", err, sherror.CodeConfigInvalid)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env.toml")
	if err := os.WriteFile(configPath, []byte("[general]\nname = \"from-env\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv(EnvConfigPath, configPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "from-env" {
		t.Errorf("General.Name = %v, want from-env", cfg.General.Name)
	}
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()
	if len(paths) != 3 {
		t.Fatalf("DefaultPaths() returned %d paths", len(paths))
	}
	if paths[0] != "./configs/strhelp.toml" {
		t.Errorf("first path = %v", paths[0])
	}
}
