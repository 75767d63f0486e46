package packs

import (
	"os"
	"testing"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("dots")
	env.AddFile("dots", ".zshrc", "")
	env.AddFile("dots", ".config/nvim/init.lua", "")
	env.AddFile("dots", ".config/git/config", "")
	env.AddFile("dots", ".bashrc", "")
	env.AddFile("dots", ".gitignore", "")
	env.AddFile("dots", ".git/HEAD", "")
	env.AddFile("dots", ".stau.toml", "")
	env.AddScript("dots", "setup.sh", "true")
	env.AddScript("dots", "teardown.sh", "true")
	env.AddFile("dots", "sub/setup.sh", "")
	env.AddFile("dots", "sub/.gitignore", "")
	require.NoError(t, os.Symlink("/etc/hosts", env.PackagePath("dots", "hosts")))

	w := NewWalker(env.FS, nil)
	entries, err := w.Entries(pkg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		".bashrc",
		".config/git/config",
		".config/nvim/init.lua",
		".zshrc",
		"sub/.gitignore",
	}, entries)
}

func TestWalkRestartable(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("dots")
	env.AddFile("dots", "a", "")

	seq := NewWalker(env.FS, nil).Walk(pkg)

	var first, second []string
	for e, err := range seq {
		require.NoError(t, err)
		first = append(first, e)
	}
	env.AddFile("dots", "b", "")
	for e, err := range seq {
		require.NoError(t, err)
		second = append(second, e)
	}

	assert.Equal(t, []string{"a"}, first)
	assert.Equal(t, []string{"a", "b"}, second)
}

func TestWalkEarlyStop(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("dots")
	env.AddFile("dots", "a/1", "")
	env.AddFile("dots", "a/2", "")
	env.AddFile("dots", "b", "")

	var got []string
	for e, err := range NewWalker(env.FS, nil).Walk(pkg) {
		require.NoError(t, err)
		got = append(got, e)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a/1", "a/2"}, got)
}

func TestWalkIgnoreGlobs(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("dots")
	env.AddFile("dots", ".stau.toml", `
description = "shell files"
ignore = ["*.md", "scratch", ".config/*/cache"]
`)
	env.AddFile("dots", "README.md", "")
	env.AddFile("dots", "docs/notes.md", "")
	env.AddFile("dots", "scratch/x", "")
	env.AddFile("dots", ".config/app/cache", "")
	env.AddFile("dots", ".config/app/settings", "")
	env.AddFile("dots", ".zshrc", "")

	entries, err := NewWalker(env.FS, nil).Entries(pkg)
	require.NoError(t, err)
	assert.Equal(t, []string{".config/app/settings", ".zshrc"}, entries)

	meta, err := LoadMeta(env.FS, pkg)
	require.NoError(t, err)
	assert.Equal(t, "shell files", meta.Description)
}

func TestWalkCustomReserved(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("dots")
	env.AddFile("dots", ".gitignore", "")
	env.AddFile("dots", "LICENSE", "")

	entries, err := NewWalker(env.FS, []string{"LICENSE"}).Entries(pkg)
	require.NoError(t, err)
	assert.Equal(t, []string{".gitignore"}, entries)
}

func TestWalkInvalidMeta(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("dots")
	env.AddFile("dots", ".stau.toml", "ignore = [")

	_, err := NewWalker(env.FS, nil).Entries(pkg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageInvalid))
}

func TestWalkReadError(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("dots")
	env.AddFile("dots", "a", "")
	require.NoError(t, os.Remove(env.PackagePath("dots", "a")))
	require.NoError(t, os.Remove(pkg.Path))

	_, err := NewWalker(env.FS, nil).Entries(pkg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

func TestMetaIgnores(t *testing.T) {
	m := Meta{Ignore: []string{"*.bak", "docs/*"}}
	assert.True(t, m.Ignores("x.bak"))
	assert.True(t, m.Ignores(".config/x.bak"))
	assert.True(t, m.Ignores("docs/a"))
	assert.False(t, m.Ignores("docs"))
	assert.False(t, m.Ignores(".zshrc"))
}
