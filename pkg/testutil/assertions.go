package testutil

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertLink checks that path is a symlink whose text is dest
func AssertLink(t *testing.T, path, dest string) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err, "expected link at %s", path)
	require.NotZero(t, info.Mode()&fs.ModeSymlink, "%s is not a symlink", path)
	got, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, dest, got, "link text of %s", path)
}

// AssertFile checks that path is a regular file with the given content
func AssertFile(t *testing.T, path, content string) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err, "expected file at %s", path)
	require.True(t, info.Mode().IsRegular(), "%s is not a regular file (%s)", path, info.Mode())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data), "content of %s", path)
}

// AssertMode checks the permission bits of a file
func AssertMode(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err)
	assert.Equal(t, mode, info.Mode().Perm(), "mode of %s", path)
}

// AssertAbsent checks that nothing exists at path, not even a broken link
func AssertAbsent(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "expected nothing at %s, got err=%v", path, err)
}

// AssertDir checks that path is a real directory
func AssertDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err, "expected directory at %s", path)
	assert.True(t, info.IsDir(), "%s is not a directory", path)
}
