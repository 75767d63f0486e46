package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/stau/pkg/types"
)

// FaultFS wraps a types.FS and fails chosen operations on chosen paths.
// Operation names match the FS method names ("Symlink", "Rename", ...).
type FaultFS struct {
	types.FS

	mu     sync.Mutex
	faults map[string]error
	calls  []string
}

// NewFaultFS wraps inner
func NewFaultFS(inner types.FS) *FaultFS {
	return &FaultFS{FS: inner, faults: make(map[string]error)}
}

// Fail makes op on path return err. An empty path matches every path.
func (f *FaultFS) Fail(op, path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op+"\x00"+path] = err
}

// Calls returns "op path" for every mutating call made so far
func (f *FaultFS) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FaultFS) check(op, path string, mutating bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if mutating {
		f.calls = append(f.calls, op+" "+path)
	}
	if err, ok := f.faults[op+"\x00"+path]; ok {
		return err
	}
	if err, ok := f.faults[op+"\x00"]; ok {
		return err
	}
	return nil
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check("Lstat", name, false); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check("Stat", name, false); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultFS) Open(name string) (types.File, error) {
	if err := f.check("Open", name, false); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

func (f *FaultFS) CreateTemp(dir, pattern string) (types.File, error) {
	if err := f.check("CreateTemp", dir, true); err != nil {
		return nil, err
	}
	return f.FS.CreateTemp(dir, pattern)
}

func (f *FaultFS) Chmod(name string, mode fs.FileMode) error {
	if err := f.check("Chmod", name, true); err != nil {
		return err
	}
	return f.FS.Chmod(name, mode)
}

func (f *FaultFS) Rename(oldpath, newpath string) error {
	if err := f.check("Rename", newpath, true); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FaultFS) Mkdir(path string, perm fs.FileMode) error {
	if err := f.check("Mkdir", path, true); err != nil {
		return err
	}
	return f.FS.Mkdir(path, perm)
}

func (f *FaultFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check("MkdirAll", path, true); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultFS) Symlink(oldname, newname string) error {
	if err := f.check("Symlink", newname, true); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultFS) Remove(name string) error {
	if err := f.check("Remove", name, true); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultFS) RemoveAll(path string) error {
	if err := f.check("RemoveAll", path, true); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}
