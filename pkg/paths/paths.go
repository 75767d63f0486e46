package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/stau/pkg/errors"
)

// Environment variable names
const (
	// EnvDir overrides the dotfiles directory
	EnvDir = "STAU_DIR"

	// EnvTarget overrides the target directory
	EnvTarget = "STAU_TARGET"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DefaultDotfilesDir is the directory name, relative to $HOME, used when
	// nothing else is configured
	DefaultDotfilesDir = "dotfiles"

	// AppDirName is the directory name used under the XDG directories
	AppDirName = "stau"

	// RootConfigFile is the optional config file at the dotfiles root and the
	// package metadata file inside a package
	RootConfigFile = ".stau.toml"

	// UserConfigFile is the file name of the user configuration
	UserConfigFile = "config.toml"

	// SetupScript runs after a package is installed
	SetupScript = "setup.sh"

	// TeardownScript runs before a package is uninstalled
	TeardownScript = "teardown.sh"
)

// Options holds explicitly requested directories. Empty fields fall back to
// the environment and then to defaults.
type Options struct {
	DotfilesDir string
	TargetDir   string
}

// Paths holds the resolved, absolute dotfiles and target directories
type Paths struct {
	dotfilesDir string
	targetDir   string
}

// New resolves the dotfiles and target directories. The dotfiles directory
// must exist; the target directory is not checked here.
func New(opts Options) (*Paths, error) {
	dir := firstNonEmpty(opts.DotfilesDir, os.Getenv(EnvDir))
	if dir == "" {
		home, err := homeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, DefaultDotfilesDir)
	}

	target := firstNonEmpty(opts.TargetDir, os.Getenv(EnvTarget))
	if target == "" {
		home, err := homeDir()
		if err != nil {
			return nil, err
		}
		target = home
	}

	absDir, err := NormalizePath(dir)
	if err != nil {
		return nil, err
	}
	absTarget, err := NormalizePath(target)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absDir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrDotfilesDirNotFound, "dotfiles directory not found: %s", absDir).
			WithDetail("path", absDir)
	}

	return &Paths{dotfilesDir: absDir, targetDir: absTarget}, nil
}

// DotfilesDir returns the absolute dotfiles directory
func (p *Paths) DotfilesDir() string {
	return p.dotfilesDir
}

// TargetDir returns the absolute target directory
func (p *Paths) TargetDir() string {
	return p.targetDir
}

// PackagePath returns the root of a package
func (p *Paths) PackagePath(name string) string {
	return filepath.Join(p.dotfilesDir, name)
}

// ScriptPath returns the path of a package script (setup.sh or teardown.sh)
func (p *Paths) ScriptPath(pkg, script string) string {
	return filepath.Join(p.PackagePath(pkg), script)
}

// RootConfigPath returns the optional config file at the dotfiles root
func (p *Paths) RootConfigPath() string {
	return filepath.Join(p.dotfilesDir, RootConfigFile)
}

// TargetPath maps a package entry to its location under the target
func (p *Paths) TargetPath(entry string) string {
	return filepath.Join(p.targetDir, filepath.FromSlash(entry))
}

// EntryFor maps a path under the target back to a package entry.
// Paths outside the target, or the target itself, are rejected.
func (p *Paths) EntryFor(path string) (string, error) {
	abs, err := NormalizePath(path)
	if err != nil {
		return "", err
	}
	if !IsWithin(p.targetDir, abs) || abs == p.targetDir {
		return "", errors.Newf(errors.ErrInvalidPath, "%s is not inside the target directory %s", abs, p.targetDir).
			WithDetail("path", abs)
	}
	rel, err := filepath.Rel(p.targetDir, abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPath, "cannot make %s relative to %s", abs, p.targetDir)
	}
	return filepath.ToSlash(rel), nil
}

// ConfigDir returns the XDG config directory for stau
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// UserConfigPath returns the path of the user configuration file
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// StateDir returns the XDG state directory for stau
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// NormalizePath expands ~, makes the path absolute and cleans it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidPath, "empty path")
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPath, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := homeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}

	// ~user is not supported
	return path
}

// IsWithin reports whether path is root or lexically below it. Both are
// expected to be clean absolute paths.
func IsWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// ValidatePackageName rejects names that would escape the dotfiles directory
func ValidatePackageName(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrInvalidInput, "package name cannot be empty")
	case name == "." || name == "..":
		return errors.Newf(errors.ErrInvalidInput, "invalid package name: %q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Newf(errors.ErrInvalidInput, "package name cannot contain path separators: %q", name)
	case strings.ContainsRune(name, 0):
		return errors.New(errors.ErrInvalidInput, "package name cannot contain null bytes")
	}
	return nil
}

func homeDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidPath, "cannot determine home directory")
	}
	return home, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
