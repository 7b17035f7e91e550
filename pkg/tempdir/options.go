package tempdir

import (
	"time"

	"github.com/bft-labs/resunpack/pkg/log"
)

const (
	// DefaultRetryDelay is the pause between release attempts.
	DefaultRetryDelay = 200 * time.Millisecond

	// DefaultMaxAttempts caps the number of full deletion passes.
	DefaultMaxAttempts = 5
)

// Option configures a Workspace.
type Option func(*options)

type options struct {
	prefix      string
	baseDir     string
	retryDelay  time.Duration
	maxAttempts int
	logger      log.Logger
	fs          FS
}

func defaultOptions() options {
	return options{
		retryDelay:  DefaultRetryDelay,
		maxAttempts: DefaultMaxAttempts,
		logger:      log.NoopLogger{},
		fs:          OSFS{},
	}
}

// WithPrefix sets the prefix of the directory name. The rest of the name is random.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithBaseDir sets the parent directory. Empty means os.TempDir().
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithRetryDelay sets the pause between release attempts. Negative values are ignored.
func WithRetryDelay(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.retryDelay = d
		}
	}
}

// WithMaxAttempts sets how many deletion passes Release makes before giving up.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxAttempts = n
		}
	}
}

// WithLogger sets the sink for workspace notices.
// If not provided, notices are discarded.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = log.OrNoop(logger)
	}
}

// WithFS replaces the filesystem primitives. Mostly useful for fault injection.
func WithFS(fsys FS) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}
