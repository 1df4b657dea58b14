package config

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"log level", cfg.General.LogLevel, "warn"},
		{"log format", cfg.General.LogFormat, "text"},
		{"mode", cfg.Compare.Mode, "present"},
		{"format", cfg.Compare.Format, "interleaved"},
		{"dictionary", cfg.Compare.Dictionary, "nv.txt"},
		{"color", cfg.Compare.Color, "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "nvdiff.toml", `
[general]
log_level = "debug"

[compare]
mode = "both"
dictionary = "$NVDIFF_TEST_DIR/nv.txt"
`)
	t.Setenv("NVDIFF_TEST_DIR", "/opt/nv")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.General.LogLevel)
	}
	if cfg.Compare.Mode != "both" {
		t.Errorf("Mode = %q, want both", cfg.Compare.Mode)
	}
	if cfg.Compare.Dictionary != "/opt/nv/nv.txt" {
		t.Errorf("Dictionary = %q, want expanded path", cfg.Compare.Dictionary)
	}
	if cfg.Compare.Format != "interleaved" {
		t.Errorf("Format = %q, want default interleaved", cfg.Compare.Format)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "nvdiff.yaml", `
general:
  log_format: json
compare:
  format: sequential
  color: never
browse:
  log_file: /tmp/nvdiff.log
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogFormat != "json" || cfg.Compare.Format != "sequential" || cfg.Compare.Color != "never" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Browse.LogFile != "/tmp/nvdiff.log" {
		t.Errorf("Browse.LogFile = %q", cfg.Browse.LogFile)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want default warn", cfg.General.LogLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"missing file", filepath.Join(t.TempDir(), "none.toml"), mdwerror.CodeNotFound},
		{"broken toml", writeConfig(t, "bad.toml", "[general\nlog_level="), mdwerror.CodeConfigError},
		{"broken yaml", writeConfig(t, "bad.yaml", "general: [unclosed"), mdwerror.CodeConfigError},
		{"unknown level", writeConfig(t, "level.toml", "[general]\nlog_level = \"loud\"\n"), mdwerror.CodeInvalidConfig},
		{"unknown format", writeConfig(t, "format.toml", "[general]\nlog_format = \"xml\"\n"), mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			if err == nil {
				t.Fatalf("Load() = %+v, want error", cfg)
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv(EnvConfigPath, "")

	if _, ok := Locate(""); ok {
		t.Error("Locate() should find nothing in an empty directory")
	}

	if path, ok := Locate("explicit.toml"); !ok || path != "explicit.toml" {
		t.Errorf("Locate(explicit) = %q, %v", path, ok)
	}

	t.Setenv(EnvConfigPath, "/etc/nvdiff.toml")
	if path, _ := Locate(""); path != "/etc/nvdiff.toml" {
		t.Errorf("Locate() = %q, want env path", path)
	}
	t.Setenv(EnvConfigPath, "")

	if err := os.WriteFile(filepath.Join(dir, "nvdiff.toml"), []byte("[compare]\nmode = \"m\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, path, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if path != "./nvdiff.toml" || cfg.Compare.Mode != "m" {
		t.Errorf("LoadOrDefault() = %q, mode %q", path, cfg.Compare.Mode)
	}
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv(EnvConfigPath, "")

	cfg, path, err := LoadOrDefault("")
	if err != nil || path != "" {
		t.Fatalf("LoadOrDefault() = %q, %v", path, err)
	}
	if cfg.Compare.Mode != "present" {
		t.Errorf("Mode = %q, want default", cfg.Compare.Mode)
	}
}
