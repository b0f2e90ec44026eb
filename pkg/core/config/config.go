// File: config.go
// Title: Tool Configuration Management
// Description: Implements configuration loading for the adifkit CLI tools.
//              Configuration files may be TOML or YAML; the format is
//              auto-detected from the file extension. All settings have
//              working defaults so a configuration file is optional.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	kiterror "github.com/msto63/adifkit/pkg/core/error"
	"github.com/msto63/adifkit/pkg/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the complete tool configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Dump    DumpConfig    `toml:"dump" yaml:"dump"`
	Diff    DiffConfig    `toml:"diff" yaml:"diff"`
}

// GeneralConfig holds settings shared by all commands
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// DumpConfig holds settings for the dump command
type DumpConfig struct {
	// Records selects which records are dumped: "one" or "all"
	Records string `toml:"records" yaml:"records"`

	// Fields restricts the dumped columns; empty means all fields
	Fields []string `toml:"fields" yaml:"fields"`

	// Filter keeps only records whose field equals the given value
	Filter map[string]string `toml:"filter" yaml:"filter"`
}

// DiffConfig holds settings for the diff command
type DiffConfig struct {
	// MatchFields derive the record signature used to pair records
	MatchFields []string `toml:"match_fields" yaml:"match_fields"`

	// CompareField is the single field compared between paired records
	CompareField string `toml:"compare_field" yaml:"compare_field"`
}

// Default returns the configuration used when no file is provided
func Default() Config {
	return Config{
		General: GeneralConfig{
			LogLevel:  "info",
			LogFormat: "text",
		},
		Dump: DumpConfig{
			Records: "all",
		},
		Diff: DiffConfig{
			MatchFields:  []string{"qso_date", "call"},
			CompareField: "gridsquare",
		},
	}
}

// Load loads configuration from a file, auto-detecting the format
func Load(filePath string) (Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat loads configuration from a file in the given format
func LoadWithFormat(filePath string, format Format) (Config, error) {
	cfg := Default()

	if stringx.IsBlank(filePath) {
		return cfg, kiterror.New("config file path cannot be empty").
			WithCode(kiterror.CodeValidationFailed).
			WithOperation("config.LoadWithFormat")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return cfg, kiterror.Newf("config file not found: %s", filePath).
			WithCode(kiterror.CodeNotFound).
			WithOperation("config.LoadWithFormat").
			WithDetail("filePath", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, kiterror.Wrap(err, "failed to read config file").
			WithCode(kiterror.CodeConfigError).
			WithOperation("config.LoadWithFormat").
			WithDetail("filePath", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	if err := parseContent(content, format, &cfg); err != nil {
		return cfg, kiterror.Wrap(err, "failed to parse config file").
			WithCode(kiterror.CodeConfigError).
			WithOperation("config.LoadWithFormat").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadFromString parses configuration from a string in the given format
func LoadFromString(content string, format Format) (Config, error) {
	cfg := Default()

	if format == FormatAuto {
		format = FormatTOML
	}

	if err := parseContent([]byte(content), format, &cfg); err != nil {
		return cfg, kiterror.Wrap(err, "failed to parse config from string").
			WithCode(kiterror.CodeConfigError).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return kiterror.Wrap(err, "TOML parse error").
				WithCode(kiterror.CodeInvalidInput).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return kiterror.Wrap(err, "YAML parse error").
				WithCode(kiterror.CodeInvalidInput).
				WithOperation("config.parseContent")
		}
	default:
		return kiterror.Newf("unsupported format: %s", format).
			WithCode(kiterror.CodeInvalidInput).
			WithOperation("config.parseContent")
	}

	return nil
}

// Validate checks that all configured values are usable
func (c *Config) Validate() error {
	switch stringx.TrimToLower(c.Dump.Records) {
	case "", "one", "all":
		// empty falls back to the default at use time
	default:
		return kiterror.Newf("dump.records must be \"one\" or \"all\", got %q", c.Dump.Records).
			WithCode(kiterror.CodeValidationFailed).
			WithOperation("config.Validate")
	}

	if len(c.Diff.MatchFields) == 0 {
		return kiterror.New("diff.match_fields must not be empty").
			WithCode(kiterror.CodeValidationFailed).
			WithOperation("config.Validate")
	}

	if stringx.IsBlank(c.Diff.CompareField) {
		return kiterror.New("diff.compare_field must not be empty").
			WithCode(kiterror.CodeValidationFailed).
			WithOperation("config.Validate")
	}

	return nil
}
