package tempdir

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/bft-labs/resunpack/pkg/log"
)

// Workspace owns a temporary directory until Release is called.
// A Workspace is not safe for concurrent use.
type Workspace struct {
	path        string
	retryDelay  time.Duration
	maxAttempts int
	logger      log.Logger
	fs          FS

	released    bool
	interrupted error
}

// New creates an empty, uniquely named directory and returns its handle.
// Creation is not retried: any failure is returned as an *AllocationError.
func New(opts ...Option) (*Workspace, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	base := o.baseDir
	if base == "" {
		base = os.TempDir()
	}

	dir, err := o.fs.MkdirTemp(base, o.prefix+"*")
	if err != nil {
		return nil, &AllocationError{BaseDir: base, Prefix: o.prefix, Err: err}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		_ = o.fs.Remove(dir)
		return nil, &AllocationError{BaseDir: base, Prefix: o.prefix, Err: err}
	}

	o.logger.Debug("workspace created", log.String("path", abs))

	return &Workspace{
		path:        abs,
		retryDelay:  o.retryDelay,
		maxAttempts: o.maxAttempts,
		logger:      o.logger,
		fs:          o.fs,
	}, nil
}

// Path returns the absolute path of the workspace directory.
func (w *Workspace) Path() string {
	return w.path
}

// Interrupted returns the context error observed while Release was waiting
// between attempts, or nil if no wait was cut short.
func (w *Workspace) Interrupted() error {
	return w.interrupted
}

// Release deletes the workspace directory and everything below it.
//
// A pass that fails because a directory is still reported non-empty is
// retried from scratch after the retry delay, up to the attempt cap. Any other
// failure ends Release immediately with a *CleanupIOError. Cancelling ctx
// shortens the remaining waits but never skips an attempt.
func (w *Workspace) Release(ctx context.Context) error {
	if w.released {
		return ErrAlreadyReleased
	}
	w.released = true

	var last error
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		err := w.removeTree()
		if err == nil {
			if attempt > 1 {
				w.logger.Info("workspace released after retry",
					log.String("path", w.path), log.Int("attempts", attempt))
			} else {
				w.logger.Debug("workspace released", log.String("path", w.path))
			}
			return nil
		}

		var transient *cleanupTransientError
		if !errors.As(err, &transient) {
			return &CleanupIOError{Path: w.path, Attempt: attempt, Err: err}
		}
		last = transient.Err

		if attempt == w.maxAttempts {
			break
		}
		w.logger.Warn("workspace not empty after delete, retrying",
			log.String("path", w.path),
			log.Int("attempt", attempt),
			log.Duration("delay", w.retryDelay),
			log.Err(last))
		w.wait(ctx)
	}

	return &CleanupExhaustedError{Path: w.path, Attempts: w.maxAttempts, Err: last}
}

// wait sleeps for the retry delay or until ctx is done, whichever is first.
func (w *Workspace) wait(ctx context.Context) {
	t := time.NewTimer(w.retryDelay)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
		if w.interrupted == nil {
			w.interrupted = ctx.Err()
			w.logger.Warn("workspace release wait interrupted, continuing cleanup",
				log.String("path", w.path), log.Err(w.interrupted))
		}
	}
}

// removeTree makes one deletion pass. Entries are removed in reverse lexical
// pre-order, so every entry goes before the directory containing it.
// Entries that are already gone count as removed.
func (w *Workspace) removeTree() error {
	var entries []string
	err := w.fs.WalkDir(w.path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		entries = append(entries, path)
		return nil
	})
	if err != nil {
		return classify(err)
	}

	slices.Reverse(entries)
	for _, path := range entries {
		if err := w.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return classify(err)
		}
	}
	return nil
}
