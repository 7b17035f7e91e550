package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by BindFlags.
const (
	FlagConfig      = "config"
	FlagTempPrefix  = "temp-prefix"
	FlagTempDir     = "temp-dir"
	FlagRetryDelay  = "cleanup-retry-delay"
	FlagMaxAttempts = "cleanup-attempts"
	FlagLogLevel    = "log-level"
)

// BindFlags registers the settings on fs, using the current values of cfg as
// defaults, and returns the destination of the --config flag.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *string {
	path := fs.String(FlagConfig, "", "path to config file (default: $HOME/.resunpack/config.toml)")
	fs.StringVar(&cfg.TempPrefix, FlagTempPrefix, cfg.TempPrefix, "name prefix for scratch directories")
	fs.StringVar(&cfg.TempBaseDir, FlagTempDir, cfg.TempBaseDir, "parent directory for scratch directories (default: system temp dir)")
	fs.DurationVar(&cfg.RetryDelay, FlagRetryDelay, cfg.RetryDelay, "wait between cleanup attempts")
	fs.IntVar(&cfg.MaxAttempts, FlagMaxAttempts, cfg.MaxAttempts, "cleanup attempts before giving up")
	fs.StringVar(&cfg.LogLevel, FlagLogLevel, cfg.LogLevel, "log level (debug, info, warn, error)")

	// Only useful for tuning slow filesystems.
	_ = fs.MarkHidden(FlagRetryDelay)
	return path
}

// ChangedFlags returns the names of the flags set on the command line.
func ChangedFlags(fs *pflag.FlagSet) map[string]bool {
	changed := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	return changed
}

// Load completes cfg after fs has been parsed: the config file (the --config
// path, else DefaultConfigPath when it exists), then the environment, then
// validation. Flags set on the command line always win.
func Load(fs *pflag.FlagSet, cfg *Config, path string) error {
	changed := ChangedFlags(fs)

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if path != "" && (explicit || FileExists(path)) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}
