package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
temp_prefix = "apk-"
temp_dir = "/var/tmp/unpack"
retry_delay = "750ms"
max_attempts = 8
log_level = "debug"
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}
	want := FileConfig{
		TempPrefix:  "apk-",
		TempBaseDir: "/var/tmp/unpack",
		RetryDelay:  "750ms",
		MaxAttempts: 8,
		LogLevel:    "debug",
	}
	if fc != want {
		t.Errorf("LoadFileConfig() = %+v, want %+v", fc, want)
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	path := writeConfig(t, "temp_prefix = \n")
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestApplyFileConfig(t *testing.T) {
	fc := FileConfig{
		TempPrefix:  "file-",
		TempBaseDir: "/file",
		RetryDelay:  "1s",
		MaxAttempts: 9,
		LogLevel:    "warn",
	}

	t.Run("applies all fields", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
			t.Fatal(err)
		}
		if cfg.TempPrefix != "file-" || cfg.TempBaseDir != "/file" || cfg.LogLevel != "warn" {
			t.Errorf("strings not applied: %+v", cfg)
		}
		if cfg.RetryDelay != time.Second {
			t.Errorf("RetryDelay = %v, want 1s", cfg.RetryDelay)
		}
		if cfg.MaxAttempts != 9 {
			t.Errorf("MaxAttempts = %v, want 9", cfg.MaxAttempts)
		}
	})

	t.Run("respects changed flags", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TempPrefix = "flag-"
		changed := map[string]bool{FlagTempPrefix: true, FlagMaxAttempts: true}
		if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
			t.Fatal(err)
		}
		if cfg.TempPrefix != "flag-" {
			t.Errorf("TempPrefix = %v, want flag-", cfg.TempPrefix)
		}
		if cfg.MaxAttempts != 5 {
			t.Errorf("MaxAttempts = %v, want 5", cfg.MaxAttempts)
		}
		if cfg.TempBaseDir != "/file" {
			t.Errorf("TempBaseDir = %v, want /file", cfg.TempBaseDir)
		}
	})

	t.Run("empty values keep defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := ApplyFileConfig(&cfg, FileConfig{}, map[string]bool{}); err != nil {
			t.Fatal(err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := ApplyFileConfig(&cfg, FileConfig{RetryDelay: "soon"}, map[string]bool{}); err == nil {
			t.Error("expected error for invalid duration")
		}
	})
}

func TestFileExists(t *testing.T) {
	path := writeConfig(t, "")
	if !FileExists(path) {
		t.Errorf("FileExists(%s) = false", path)
	}
	if FileExists(path + ".nope") {
		t.Errorf("FileExists(%s.nope) = true", path)
	}
}
