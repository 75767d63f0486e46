package packs

import (
	"os"
	"path"
	"path/filepath"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// Meta is the optional per-package .stau.toml
type Meta struct {
	// Description is shown by list
	Description string `toml:"description"`

	// Ignore holds globs matched against the entry path and its base name
	Ignore []string `toml:"ignore"`
}

// LoadMeta reads the package's .stau.toml. A missing file yields an empty
// Meta.
func LoadMeta(fsys types.FS, pkg types.Package) (Meta, error) {
	var meta Meta

	metaPath := filepath.Join(pkg.Path, paths.RootConfigFile)
	data, err := fsys.ReadFile(metaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return meta, nil
		}
		return meta, errors.Wrapf(err, errors.ErrIO, "cannot read %s", metaPath).
			WithDetail("path", metaPath)
	}

	if err := toml.Unmarshal(data, &meta); err != nil {
		return meta, errors.Wrapf(err, errors.ErrPackageInvalid, "invalid package metadata in %s", metaPath).
			WithDetail("package", pkg.Name).
			WithDetail("path", metaPath)
	}

	for _, pattern := range meta.Ignore {
		if _, err := path.Match(pattern, ""); err != nil {
			return meta, errors.Wrapf(err, errors.ErrPackageInvalid, "invalid ignore pattern %q in %s", pattern, metaPath).
				WithDetail("package", pkg.Name)
		}
	}

	return meta, nil
}

// Ignores reports whether entry matches one of the ignore globs
func (m Meta) Ignores(entry string) bool {
	base := path.Base(entry)
	for _, pattern := range m.Ignore {
		if ok, _ := path.Match(pattern, entry); ok {
			return true
		}
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
