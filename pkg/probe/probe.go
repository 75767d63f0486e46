// Package probe classifies what currently exists at a target path.
//
// Classification never follows the final path component: a symlink is
// reported as a link (managed or foreign) even when its destination is
// missing. The destination is only followed to decide whether the link is
// broken.
package probe

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/rs/zerolog"
)

// Prober classifies target paths relative to the packages of a dotfiles
// directory
type Prober struct {
	fs          types.FS
	dotfilesDir string
	logger      zerolog.Logger
}

// New creates a Prober for the given dotfiles directory
func New(fsys types.FS, dotfilesDir string) *Prober {
	return &Prober{
		fs:          fsys,
		dotfilesDir: filepath.Clean(dotfilesDir),
		logger:      logging.GetLogger("probe"),
	}
}

// DotfilesDir returns the directory packages are resolved against
func (p *Prober) DotfilesDir() string {
	return p.dotfilesDir
}

// Classify reports what exists at path with respect to pkg
func (p *Prober) Classify(path string, pkg types.Package) (types.TargetState, error) {
	state := types.TargetState{Kind: types.TargetAbsent, Path: path}

	info, err := p.fs.Lstat(path)
	if err != nil {
		if IsNotExist(err) {
			return state, nil
		}
		return state, errors.Wrapf(err, errors.ErrIO, "cannot inspect %s", path).
			WithDetail("path", path)
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		if info.IsDir() {
			state.Kind = types.TargetDirectory
		} else {
			state.Kind = types.TargetRegularFile
		}
		// A real file reached through a symlinked parent may be a package
		// file itself. Record where it lives so it is never deleted.
		if name, entry, ok := p.locate(p.canonical(path)); ok {
			state.Package = name
			state.Entry = entry
		}
		return state, nil
	}

	dest, err := p.fs.Readlink(path)
	if err != nil {
		return state, errors.Wrapf(err, errors.ErrIO, "cannot read link %s", path).
			WithDetail("path", path)
	}
	state.Destination = dest
	resolved := ResolveLink(path, dest)

	if _, err := p.fs.Stat(resolved); err != nil {
		state.Broken = true
	}

	state.Kind = types.TargetForeignLink
	name, entry, ok := p.Locate(resolved)
	if !ok {
		// The dotfiles dir may be reached through a different spelling
		// (e.g. /private/var vs /var), so compare canonical forms too.
		name, entry, ok = p.locate(p.canonical(resolved))
	}
	if ok {
		state.Package = name
		state.Entry = entry
		if name == pkg.Name {
			state.Kind = types.TargetManagedLink
		}
	}

	p.logger.Trace().
		Str("path", path).
		Str("kind", string(state.Kind)).
		Str("package", state.Package).
		Bool("broken", state.Broken).
		Msg("Classified link")

	return state, nil
}

// Locate maps an absolute, lexically resolved path to the package and entry
// it falls under. Only paths at least one level inside a non-hidden
// directory of the dotfiles dir belong to a package.
func (p *Prober) Locate(path string) (pkg, entry string, ok bool) {
	return locateIn(p.dotfilesDir, path)
}

func (p *Prober) locate(path string) (string, string, bool) {
	if name, entry, ok := locateIn(p.dotfilesDir, path); ok {
		return name, entry, true
	}
	return locateIn(p.canonical(p.dotfilesDir), path)
}

func locateIn(root, path string) (string, string, bool) {
	if !paths.IsWithin(root, path) {
		return "", "", false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(filepath.ToSlash(rel), "/", 2)
	if len(parts) != 2 || parts[1] == "" || strings.HasPrefix(parts[0], ".") {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// canonical resolves symlinks in the longest existing prefix of path
func (p *Prober) canonical(path string) string {
	if resolved, err := p.fs.EvalSymlinks(path); err == nil {
		return resolved
	}
	parent := filepath.Dir(path)
	if parent == path {
		return path
	}
	return filepath.Join(p.canonical(parent), filepath.Base(path))
}

// ResolveLink resolves a link destination lexically against the link's
// directory
func ResolveLink(link, dest string) string {
	if filepath.IsAbs(dest) {
		return filepath.Clean(dest)
	}
	return filepath.Join(filepath.Dir(link), dest)
}

// IsNotExist reports errors that mean "nothing at this path", including a
// non-directory in the middle of the path
func IsNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, syscall.ENOTDIR)
}
