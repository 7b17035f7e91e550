package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	TempPrefix  string `toml:"temp_prefix"`
	TempBaseDir string `toml:"temp_dir"`
	RetryDelay  string `toml:"retry_delay"`
	MaxAttempts int    `toml:"max_attempts"`
	LogLevel    string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.resunpack/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".resunpack", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies values from a file, skipping explicitly set flags.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString(FlagTempPrefix, fc.TempPrefix, &cfg.TempPrefix)
	s.setString(FlagTempDir, fc.TempBaseDir, &cfg.TempBaseDir)
	s.setString(FlagLogLevel, fc.LogLevel, &cfg.LogLevel)
	s.setInt(FlagMaxAttempts, fc.MaxAttempts, &cfg.MaxAttempts)

	return s.setDuration(FlagRetryDelay, fc.RetryDelay, &cfg.RetryDelay)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
