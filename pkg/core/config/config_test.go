// File: config_test.go
// Title: Tool Configuration Tests
// Description: Tests for configuration loading, format detection,
//              and validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	kiterror "github.com/msto63/adifkit/pkg/core/error"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("expected log format 'text', got %q", cfg.General.LogFormat)
	}
	if cfg.Dump.Records != "all" {
		t.Errorf("expected dump.records 'all', got %q", cfg.Dump.Records)
	}
	if len(cfg.Diff.MatchFields) != 2 || cfg.Diff.MatchFields[0] != "qso_date" || cfg.Diff.MatchFields[1] != "call" {
		t.Errorf("unexpected default match fields: %v", cfg.Diff.MatchFields)
	}
	if cfg.Diff.CompareField != "gridsquare" {
		t.Errorf("expected compare field 'gridsquare', got %q", cfg.Diff.CompareField)
	}
}

func TestLoadFromString_TOML(t *testing.T) {
	content := `
[general]
log_level = "debug"
log_format = "json"

[dump]
records = "one"
fields = ["call", "gridsquare"]

[dump.filter]
band = "20m"

[diff]
match_fields = ["call"]
compare_field = "mode"
`

	cfg, err := LoadFromString(content, FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %q", cfg.General.LogLevel)
	}
	if cfg.Dump.Records != "one" {
		t.Errorf("expected dump.records 'one', got %q", cfg.Dump.Records)
	}
	if len(cfg.Dump.Fields) != 2 {
		t.Errorf("expected 2 dump fields, got %v", cfg.Dump.Fields)
	}
	if cfg.Dump.Filter["band"] != "20m" {
		t.Errorf("expected filter band=20m, got %v", cfg.Dump.Filter)
	}
	if cfg.Diff.CompareField != "mode" {
		t.Errorf("expected compare field 'mode', got %q", cfg.Diff.CompareField)
	}
}

func TestLoadFromString_YAML(t *testing.T) {
	content := `
general:
  log_level: warn
dump:
  records: all
  fields:
    - call
diff:
  match_fields:
    - qso_date
    - call
  compare_field: gridsquare
`

	cfg, err := LoadFromString(content, FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.General.LogLevel != "warn" {
		t.Errorf("expected log level 'warn', got %q", cfg.General.LogLevel)
	}
	if len(cfg.Dump.Fields) != 1 || cfg.Dump.Fields[0] != "call" {
		t.Errorf("unexpected dump fields: %v", cfg.Dump.Fields)
	}
}

func TestLoadFromString_DefaultsPreserved(t *testing.T) {
	// A partial file must not clobber defaults for absent sections
	cfg, err := LoadFromString("[general]\nlog_level = \"trace\"\n", FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.General.LogLevel != "trace" {
		t.Errorf("expected log level 'trace', got %q", cfg.General.LogLevel)
	}
	if cfg.Diff.CompareField != "gridsquare" {
		t.Errorf("expected default compare field preserved, got %q", cfg.Diff.CompareField)
	}
}

func TestLoadFromString_InvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"bad toml", "not [ valid toml", FormatTOML},
		{"bad yaml", "foo: [unclosed", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.content, tt.format)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !kiterror.HasCode(err, kiterror.CodeConfigError) {
				t.Errorf("expected CodeConfigError, got %s", kiterror.GetCode(err))
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/adifkit.toml")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !kiterror.HasCode(err, kiterror.CodeNotFound) {
		t.Errorf("expected CodeNotFound, got %s", kiterror.GetCode(err))
	}
}

func TestLoad_FormatDetection(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(tomlPath, []byte("[general]\nlog_level = \"debug\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("general:\n  log_level: trace\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name      string
		path      string
		wantLevel string
	}{
		{"toml extension", tomlPath, "debug"},
		{"yaml extension", yamlPath, "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.General.LogLevel != tt.wantLevel {
				t.Errorf("expected log level %q, got %q", tt.wantLevel, cfg.General.LogLevel)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"records one", func(c *Config) { c.Dump.Records = "one" }, false},
		{"records empty", func(c *Config) { c.Dump.Records = "" }, false},
		{"records bogus", func(c *Config) { c.Dump.Records = "some" }, true},
		{"no match fields", func(c *Config) { c.Diff.MatchFields = nil }, true},
		{"blank compare field", func(c *Config) { c.Diff.CompareField = "  " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !kiterror.HasCode(err, kiterror.CodeValidationFailed) {
				t.Errorf("expected CodeValidationFailed, got %s", kiterror.GetCode(err))
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatTOML, "toml"},
		{FormatYAML, "yaml"},
		{FormatAuto, "auto"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.format.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
