package packs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/types"
)

// ListPackages returns every package of the dotfiles directory, sorted by name
func ListPackages(fsys types.FS, dotfilesDir string) ([]types.Package, error) {
	logger := logging.GetLogger("packs.discovery")
	logger.Trace().Str("root", dotfilesDir).Msg("Listing packages")

	entries, err := fsys.ReadDir(dotfilesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrDotfilesDirNotFound, "dotfiles directory does not exist").
				WithDetail("path", dotfilesDir)
		}
		return nil, errors.Wrap(err, errors.ErrIO, "cannot read dotfiles directory").
			WithDetail("path", dotfilesDir)
	}

	var pkgs []types.Package
	for _, entry := range entries {
		name := entry.Name()

		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("name", name).Msg("Skipping hidden directory")
			continue
		}

		path := filepath.Join(dotfilesDir, name)
		isDir := entry.IsDir()
		if entry.Type()&os.ModeSymlink != 0 {
			// Follow it, as LoadPackage does
			info, err := fsys.Stat(path)
			if err != nil {
				logger.Debug().Err(err).Str("name", name).Msg("Skipping broken package link")
				continue
			}
			isDir = info.IsDir()
		}
		if !isDir {
			continue
		}

		pkgs = append(pkgs, types.Package{Name: name, Path: path})
	}

	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].Name < pkgs[j].Name
	})

	logger.Debug().Int("count", len(pkgs)).Msg("Found packages")
	return pkgs, nil
}

// LoadPackage returns the named package, which must exist as a directory
func LoadPackage(fsys types.FS, dotfilesDir, name string) (types.Package, error) {
	if err := paths.ValidatePackageName(name); err != nil {
		return types.Package{}, err
	}

	pkg := types.Package{Name: name, Path: filepath.Join(dotfilesDir, name)}

	info, err := fsys.Stat(pkg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return pkg, errors.Newf(errors.ErrPackageNotFound, "package %q not found in %s", name, dotfilesDir).
				WithDetail("package", name).
				WithDetail("path", pkg.Path)
		}
		return pkg, errors.Wrapf(err, errors.ErrIO, "cannot access package %q", name).
			WithDetail("path", pkg.Path)
	}

	if !info.IsDir() {
		return pkg, errors.Newf(errors.ErrPackageInvalid, "package path %s is not a directory", pkg.Path).
			WithDetail("package", name).
			WithDetail("path", pkg.Path)
	}

	return pkg, nil
}
