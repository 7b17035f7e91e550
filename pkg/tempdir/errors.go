package tempdir

import (
	"errors"
	"fmt"
)

// Sentinel errors, checkable with errors.Is against the typed errors below.
var (
	// ErrAllocation is matched by every *AllocationError.
	ErrAllocation = errors.New("tempdir: cannot allocate directory")

	// ErrCleanupExhausted is matched by every *CleanupExhaustedError.
	ErrCleanupExhausted = errors.New("tempdir: cleanup attempts exhausted")

	// ErrCleanupIO is matched by every *CleanupIOError.
	ErrCleanupIO = errors.New("tempdir: cleanup failed")

	// ErrAlreadyReleased is returned by a second call to Release.
	ErrAlreadyReleased = errors.New("tempdir: workspace already released")
)

// AllocationError reports that the workspace directory could not be created.
// It is never retried.
type AllocationError struct {
	BaseDir string
	Prefix  string
	Err     error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("tempdir: create directory in %s (prefix %q): %v", e.BaseDir, e.Prefix, e.Err)
}

func (e *AllocationError) Unwrap() error        { return e.Err }
func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

// CleanupExhaustedError reports that every release attempt failed with a
// "directory not empty" condition. Err is the cause from the last attempt.
type CleanupExhaustedError struct {
	Path     string
	Attempts int
	Err      error
}

func (e *CleanupExhaustedError) Error() string {
	return fmt.Sprintf("tempdir: unable to delete %s after %d attempts: %v", e.Path, e.Attempts, e.Err)
}

func (e *CleanupExhaustedError) Unwrap() error        { return e.Err }
func (e *CleanupExhaustedError) Is(target error) bool { return target == ErrCleanupExhausted }

// CleanupIOError reports a deletion failure that is not worth retrying.
type CleanupIOError struct {
	Path    string
	Attempt int
	Err     error
}

func (e *CleanupIOError) Error() string {
	return fmt.Sprintf("tempdir: delete %s (attempt %d): %v", e.Path, e.Attempt, e.Err)
}

func (e *CleanupIOError) Unwrap() error        { return e.Err }
func (e *CleanupIOError) Is(target error) bool { return target == ErrCleanupIO }

// cleanupTransientError marks a pass that failed on a non-empty directory.
// Release retries these and never returns one to the caller.
type cleanupTransientError struct {
	Err error
}

func (e *cleanupTransientError) Error() string { return "transient: " + e.Err.Error() }
func (e *cleanupTransientError) Unwrap() error { return e.Err }

// classify wraps err as transient when it is a "directory not empty" error.
func classify(err error) error {
	if isDirNotEmpty(err) {
		return &cleanupTransientError{Err: err}
	}
	return err
}
