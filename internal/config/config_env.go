package config

import "os"

// Environment variables read by ApplyEnvConfig.
const (
	EnvTempPrefix  = "RESUNPACK_TEMP_PREFIX"
	EnvTempDir     = "RESUNPACK_TEMP_DIR"
	EnvRetryDelay  = "RESUNPACK_RETRY_DELAY"
	EnvMaxAttempts = "RESUNPACK_MAX_ATTEMPTS"
	EnvLogLevel    = "RESUNPACK_LOG_LEVEL"
)

// ApplyEnvConfig applies RESUNPACK_* environment variables, skipping explicitly
// set flags. It fails if a variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString(FlagTempPrefix, os.Getenv(EnvTempPrefix), &cfg.TempPrefix)
	s.setString(FlagTempDir, os.Getenv(EnvTempDir), &cfg.TempBaseDir)
	s.setString(FlagLogLevel, os.Getenv(EnvLogLevel), &cfg.LogLevel)

	if err := s.setDuration(FlagRetryDelay, os.Getenv(EnvRetryDelay), &cfg.RetryDelay); err != nil {
		return err
	}
	return s.setIntFromString(FlagMaxAttempts, os.Getenv(EnvMaxAttempts), &cfg.MaxAttempts)
}
