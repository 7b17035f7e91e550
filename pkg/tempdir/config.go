package tempdir

import "time"

// Config is the serializable form of the workspace options.
type Config struct {
	Prefix      string
	BaseDir     string
	RetryDelay  time.Duration
	MaxAttempts int
}

// DefaultConfig returns a Config with the default retry policy and no prefix.
func DefaultConfig() Config {
	return Config{
		RetryDelay:  DefaultRetryDelay,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Options converts c into workspace options.
func (c Config) Options() []Option {
	return []Option{
		WithPrefix(c.Prefix),
		WithBaseDir(c.BaseDir),
		WithRetryDelay(c.RetryDelay),
		WithMaxAttempts(c.MaxAttempts),
	}
}

// NewFromConfig creates a workspace from cfg. Later opts override cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Workspace, error) {
	return New(append(cfg.Options(), opts...)...)
}
