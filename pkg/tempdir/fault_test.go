package tempdir

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// faultFS wraps OSFS and counts deletion passes. On pass i (1-based) removal
// of the workspace root fails with rootErrs[i-1] when that entry is non-nil.
type faultFS struct {
	OSFS
	root     string
	rootErrs []error

	passes     int
	removed    []string
	violations []string
}

func (f *faultFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	f.passes++
	return f.OSFS.WalkDir(root, fn)
}

func (f *faultFS) Remove(name string) error {
	if filepath.Clean(name) == filepath.Clean(f.root) && f.passes <= len(f.rootErrs) {
		if err := f.rootErrs[f.passes-1]; err != nil {
			return &fs.PathError{Op: "remove", Path: name, Err: err}
		}
	}
	if ents, err := os.ReadDir(name); err == nil && len(ents) > 0 {
		f.violations = append(f.violations, name)
	}
	if err := f.OSFS.Remove(name); err != nil {
		return err
	}
	f.removed = append(f.removed, name)
	return nil
}

// failMkdirFS refuses to create directories.
type failMkdirFS struct {
	OSFS
	err error
}

func (f failMkdirFS) MkdirTemp(dir, pattern string) (string, error) {
	return "", &fs.PathError{Op: "mkdirtemp", Path: filepath.Join(dir, pattern), Err: f.err}
}

func repeatErr(err error, n int) []error {
	out := make([]error, n)
	for i := range out {
		out[i] = err
	}
	return out
}

// newFaulty creates a workspace under a test temp dir backed by a faultFS.
func newFaulty(t *testing.T, rootErrs []error, opts ...Option) (*Workspace, *faultFS) {
	t.Helper()
	fsys := &faultFS{rootErrs: rootErrs}
	ws, err := New(append([]Option{WithBaseDir(t.TempDir()), WithFS(fsys)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	fsys.root = ws.Path()
	t.Cleanup(func() { _ = os.RemoveAll(ws.Path()) })
	return ws, fsys
}

// populate builds a mixed-depth tree under root.
func populate(t *testing.T, root string) {
	t.Helper()
	dirs := []string{
		"a",
		"a/b",
		"a/b/c",
		"a-sibling",
		"d/e/f/g",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	files := []string{
		"top.txt",
		"a/one.bin",
		"a/b/two.bin",
		"a/b/c/three.bin",
		"a-sibling/x",
		"d/e/f/g/deep.txt",
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(root, filepath.FromSlash(f)), []byte(f), 0o644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
