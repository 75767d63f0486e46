package cleaner

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/probe"
	"github.com/arthur-debert/stau/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.Package("zsh")
	env.Package("git")
	env.AddFile("zsh", ".zshrc", "")
	env.AddFile("git", ".gitconfig", "")

	healthy := env.Link("zsh", ".zshrc")
	env.Link("git", ".gitconfig")
	brokenZsh := env.AddTargetLink(".zprofile", env.PackagePath("zsh", ".zprofile"))
	brokenGit := env.AddTargetLink(".config/git/ignore", env.PackagePath("git", ".config/git/ignore"))
	env.AddTargetLink(".dangling", "/nonexistent/elsewhere")
	env.AddTargetLink(".cache/zsh", env.PackagePath("zsh", "cached"))
	env.AddTargetLink("node_modules/x", env.PackagePath("zsh", "x"))

	c := New(env.FS, probe.New(env.FS, env.DotfilesDir), env.TargetDir, nil)

	t.Run("all packages", func(t *testing.T) {
		found, err := c.Scan()
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, brokenGit, found[0].Path)
		assert.Equal(t, "git", found[0].Package)
		assert.Equal(t, ".config/git/ignore", found[0].Entry)
		assert.Equal(t, brokenZsh, found[1].Path)
		assert.Equal(t, "zsh", found[1].Package)
		for _, f := range found {
			assert.NotEqual(t, healthy, f.Path)
		}
	})

	t.Run("filtered", func(t *testing.T) {
		found, err := c.Scan("zsh")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, brokenZsh, found[0].Path)
	})

	t.Run("unknown package", func(t *testing.T) {
		found, err := c.Scan("nope")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestScanSkipsDotfilesDirAndSymlinkedDirs(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.Package("zsh")
	env.AddFile("zsh", "dir/file", "")

	// A link to a directory must not be descended into
	env.AddTargetLink("linked", env.PackagePath("zsh", "dir"))
	// A dotfiles dir living inside the target is never scanned
	inner := env.AddTargetDir("dotfiles")
	env.AddTargetLink("dotfiles/zsh/stale", env.PackagePath("zsh", "stale"))

	c := New(env.FS, probe.New(env.FS, inner), env.TargetDir, []string{})
	found, err := c.Scan()
	require.NoError(t, err)
	assert.Empty(t, found)

	c = New(env.FS, probe.New(env.FS, env.DotfilesDir), env.TargetDir, []string{})
	found, err = c.Scan()
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(inner, "zsh", "stale"), found[0].Path)
}

func TestScanMissingTarget(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	c := New(env.FS, probe.New(env.FS, env.DotfilesDir), filepath.Join(env.Root, "missing"), nil)
	_, err := c.Scan()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}
