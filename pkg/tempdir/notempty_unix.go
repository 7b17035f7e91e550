//go:build !windows

package tempdir

import (
	"errors"

	"golang.org/x/sys/unix"
)

// errDirNotEmpty is the errno rmdir(2) returns for a non-empty directory.
var errDirNotEmpty error = unix.ENOTEMPTY

// isDirNotEmpty reports whether err means the directory still had entries.
// POSIX allows rmdir to report that as either ENOTEMPTY or EEXIST.
func isDirNotEmpty(err error) bool {
	return errors.Is(err, unix.ENOTEMPTY) || errors.Is(err, unix.EEXIST)
}
