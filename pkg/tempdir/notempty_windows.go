//go:build windows

package tempdir

import (
	"errors"

	"golang.org/x/sys/windows"
)

// errDirNotEmpty is ERROR_DIR_NOT_EMPTY (145) from RemoveDirectoryW.
var errDirNotEmpty error = windows.ERROR_DIR_NOT_EMPTY

// isDirNotEmpty reports whether err means the directory still had entries.
// Windows reports this while a deleted child is pending removal because
// another process still holds a handle to it.
func isDirNotEmpty(err error) bool {
	return errors.Is(err, windows.ERROR_DIR_NOT_EMPTY)
}
