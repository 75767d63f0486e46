package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stau/pkg/filesystem"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/stretchr/testify/require"
)

// TestEnvironment is an isolated dotfiles dir and target dir pair
type TestEnvironment struct {
	Root        string
	DotfilesDir string
	TargetDir   string
	FS          types.FS

	t *testing.T
}

// NewTestEnvironment creates <tmp>/dotfiles and <tmp>/home and points HOME,
// STAU_DIR and STAU_TARGET at them
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	// Resolve /var -> /private/var style indirections so that paths
	// reported by the code under test compare equal to ours.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	env := &TestEnvironment{
		Root:        root,
		DotfilesDir: filepath.Join(root, "dotfiles"),
		TargetDir:   filepath.Join(root, "home"),
		FS:          filesystem.NewOS(),
		t:           t,
	}
	require.NoError(t, os.MkdirAll(env.DotfilesDir, 0755))
	require.NoError(t, os.MkdirAll(env.TargetDir, 0755))

	t.Setenv("HOME", env.TargetDir)
	t.Setenv("STAU_DIR", env.DotfilesDir)
	t.Setenv("STAU_TARGET", env.TargetDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))

	return env
}

// Package returns the package descriptor for name, creating its directory
func (env *TestEnvironment) Package(name string) types.Package {
	env.t.Helper()
	dir := filepath.Join(env.DotfilesDir, name)
	require.NoError(env.t, os.MkdirAll(dir, 0755))
	return types.Package{Name: name, Path: dir}
}

// AddFile writes a package file and returns its absolute path
func (env *TestEnvironment) AddFile(pkg, entry, content string) string {
	env.t.Helper()
	return env.AddFileMode(pkg, entry, content, 0644)
}

// AddFileMode writes a package file with the given permissions
func (env *TestEnvironment) AddFileMode(pkg, entry, content string, mode os.FileMode) string {
	env.t.Helper()
	path := filepath.Join(env.DotfilesDir, pkg, filepath.FromSlash(entry))
	writeFile(env.t, path, content, mode)
	return path
}

// AddScript writes an executable package script
func (env *TestEnvironment) AddScript(pkg, name, body string) string {
	env.t.Helper()
	return env.AddFileMode(pkg, name, "#!/bin/sh\n"+body+"\n", 0755)
}

// TargetPath returns the target-side path of an entry
func (env *TestEnvironment) TargetPath(entry string) string {
	return filepath.Join(env.TargetDir, filepath.FromSlash(entry))
}

// PackagePath returns the absolute path of a package file
func (env *TestEnvironment) PackagePath(pkg, entry string) string {
	return filepath.Join(env.DotfilesDir, pkg, filepath.FromSlash(entry))
}

// AddTargetFile writes a regular file under the target
func (env *TestEnvironment) AddTargetFile(entry, content string) string {
	env.t.Helper()
	path := env.TargetPath(entry)
	writeFile(env.t, path, content, 0644)
	return path
}

// AddTargetDir creates a directory under the target
func (env *TestEnvironment) AddTargetDir(entry string) string {
	env.t.Helper()
	path := env.TargetPath(entry)
	require.NoError(env.t, os.MkdirAll(path, 0755))
	return path
}

// AddTargetLink creates a symlink under the target pointing at dest
func (env *TestEnvironment) AddTargetLink(entry, dest string) string {
	env.t.Helper()
	path := env.TargetPath(entry)
	require.NoError(env.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, os.Symlink(dest, path))
	return path
}

// Link creates the link stau itself would create for a package entry
func (env *TestEnvironment) Link(pkg, entry string) string {
	env.t.Helper()
	return env.AddTargetLink(entry, env.PackagePath(pkg, entry))
}

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	require.NoError(t, os.Chmod(path, mode))
}
