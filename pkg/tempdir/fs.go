package tempdir

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the set of filesystem primitives a Workspace needs.
type FS interface {
	// MkdirTemp creates a new directory in dir, as os.MkdirTemp does.
	MkdirTemp(dir, pattern string) (string, error)

	// WalkDir walks the tree rooted at root in lexical order, as filepath.WalkDir does.
	WalkDir(root string, fn fs.WalkDirFunc) error

	// Remove removes a file or an empty directory.
	Remove(name string) error
}

// OSFS implements FS on the host filesystem.
type OSFS struct{}

func (OSFS) MkdirTemp(dir, pattern string) (string, error) { return os.MkdirTemp(dir, pattern) }
func (OSFS) WalkDir(root string, fn fs.WalkDirFunc) error  { return filepath.WalkDir(root, fn) }
func (OSFS) Remove(name string) error                      { return os.Remove(name) }
