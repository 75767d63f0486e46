package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) (userPath string) {
	t.Helper()
	t.Setenv("STAU_DIR", "")
	t.Setenv("STAU_TARGET", "")
	t.Setenv("HOME", t.TempDir())
	return filepath.Join(t.TempDir(), "config.toml")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Dir)
	assert.Empty(t, cfg.Target)
	assert.True(t, cfg.Uninstall.CopyBack)
	assert.False(t, cfg.Uninstall.Prune)
	assert.Equal(t, os.FileMode(0755), cfg.Permissions.Directory)
	assert.Contains(t, cfg.Walker.Reserved, ".git")
	assert.Contains(t, cfg.Walker.Reserved, ".stau.toml")
	assert.Equal(t, []string{".cache", ".git", "node_modules"}, cfg.Clean.SkipDirs)
}

func TestLoadLayers(t *testing.T) {
	t.Run("user config overrides defaults", func(t *testing.T) {
		userPath := isolate(t)
		writeFile(t, userPath, `
dir = "/srv/dotfiles"

[uninstall]
copy_back = false
`)
		cfg, err := Load(LoadOptions{UserConfigPath: userPath, SkipRoot: true})
		require.NoError(t, err)
		assert.Equal(t, "/srv/dotfiles", cfg.Dir)
		assert.False(t, cfg.Uninstall.CopyBack)
	})

	t.Run("root config overrides user config", func(t *testing.T) {
		userPath := isolate(t)
		dotfiles := t.TempDir()
		writeFile(t, userPath, `
[clean]
skip_dirs = ["Library"]
`)
		writeFile(t, filepath.Join(dotfiles, ".stau.toml"), `
[clean]
skip_dirs = ["Music", "Movies"]

[permissions]
directory = "0700"
`)
		cfg, err := Load(LoadOptions{UserConfigPath: userPath, DotfilesDir: dotfiles})
		require.NoError(t, err)
		assert.Equal(t, []string{"Music", "Movies"}, cfg.Clean.SkipDirs)
		assert.Equal(t, os.FileMode(0700), cfg.Permissions.Directory)
	})

	t.Run("root config located through STAU_DIR", func(t *testing.T) {
		userPath := isolate(t)
		dotfiles := t.TempDir()
		t.Setenv("STAU_DIR", dotfiles)
		writeFile(t, filepath.Join(dotfiles, ".stau.toml"), `
[uninstall]
copy_back = false
`)
		cfg, err := Load(LoadOptions{UserConfigPath: userPath})
		require.NoError(t, err)
		assert.Equal(t, dotfiles, cfg.Dir)
		assert.False(t, cfg.Uninstall.CopyBack)
	})

	t.Run("environment wins", func(t *testing.T) {
		userPath := isolate(t)
		writeFile(t, userPath, `
target = "/from/file"
`)
		t.Setenv("STAU_TARGET", "/from/env")
		t.Setenv("STAU_UNINSTALL__COPY_BACK", "false")
		t.Setenv("STAU_CLEAN__SKIP_DIRS", "a,b")

		cfg, err := Load(LoadOptions{UserConfigPath: userPath, SkipRoot: true})
		require.NoError(t, err)
		assert.Equal(t, "/from/env", cfg.Target)
		assert.False(t, cfg.Uninstall.CopyBack)
		assert.Equal(t, []string{"a", "b"}, cfg.Clean.SkipDirs)
	})

	t.Run("overrides applied last", func(t *testing.T) {
		userPath := isolate(t)
		t.Setenv("STAU_UNINSTALL__COPY_BACK", "true")

		cfg, err := Load(LoadOptions{
			UserConfigPath: userPath,
			SkipRoot:       true,
			Overrides:      map[string]interface{}{"uninstall.copy_back": false},
		})
		require.NoError(t, err)
		assert.False(t, cfg.Uninstall.CopyBack)
	})
}

func TestLoadInvalidFile(t *testing.T) {
	userPath := isolate(t)
	writeFile(t, userPath, "this is = = not toml")

	_, err := Load(LoadOptions{UserConfigPath: userPath, SkipRoot: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "dir", envKey("STAU_DIR"))
	assert.Equal(t, "target", envKey("STAU_TARGET"))
	assert.Equal(t, "uninstall.copy_back", envKey("STAU_UNINSTALL__COPY_BACK"))
	assert.Equal(t, "uninstall.prune", envKey("STAU_UNINSTALL__PRUNE"))
}

func TestStringToFileModeHook(t *testing.T) {
	tests := []struct {
		in   string
		want os.FileMode
	}{
		{"0755", 0755},
		{"0o700", 0700},
		{"644", 0644},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg, err := Load(LoadOptions{
				SkipUser:  true,
				SkipEnv:   true,
				SkipRoot:  true,
				Overrides: map[string]interface{}{"permissions.directory": tt.in},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Permissions.Directory)
		})
	}
}
