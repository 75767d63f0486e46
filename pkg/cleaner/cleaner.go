// Package cleaner finds broken symlinks under the target directory that
// point into packages of the dotfiles directory.
package cleaner

import (
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/probe"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultSkipDirs are never descended into
var DefaultSkipDirs = []string{".cache", ".git", "node_modules"}

// BrokenLink is a target-side link into a package file that no longer exists
type BrokenLink struct {
	Path        string `json:"path" yaml:"path"`
	Destination string `json:"destination" yaml:"destination"`
	Package     string `json:"package" yaml:"package"`
	Entry       string `json:"entry" yaml:"entry"`
}

// Cleaner scans a target directory for broken package links
type Cleaner struct {
	fs        types.FS
	prober    *probe.Prober
	targetDir string
	skipDirs  []string
	logger    zerolog.Logger
}

// New creates a Cleaner. A nil skipDirs means DefaultSkipDirs.
func New(fsys types.FS, prober *probe.Prober, targetDir string, skipDirs []string) *Cleaner {
	if skipDirs == nil {
		skipDirs = DefaultSkipDirs
	}
	return &Cleaner{
		fs:        fsys,
		prober:    prober,
		targetDir: targetDir,
		skipDirs:  skipDirs,
		logger:    logging.GetLogger("cleaner"),
	}
}

// Scan returns the broken links found under the target, in walk order.
// When packages are given only links into those packages are reported.
func (c *Cleaner) Scan(packages ...string) ([]BrokenLink, error) {
	if _, err := c.fs.ReadDir(c.targetDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read target directory %s", c.targetDir).
			WithDetail("path", c.targetDir)
	}

	var found []BrokenLink
	err := c.scanDir(c.targetDir, func(path string) error {
		state, err := c.prober.Classify(path, types.Package{})
		if err != nil {
			return err
		}
		if !state.Broken || state.Package == "" {
			return nil
		}
		if len(packages) > 0 && !slices.Contains(packages, state.Package) {
			return nil
		}
		// A package file that is itself a dangling link still exists
		if _, err := c.fs.Lstat(probe.ResolveLink(path, state.Destination)); err == nil {
			return nil
		}
		found = append(found, BrokenLink{
			Path:        path,
			Destination: state.Destination,
			Package:     state.Package,
			Entry:       state.Entry,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Int("broken", len(found)).Strs("packages", packages).Msg("Scanned target for broken links")
	return found, nil
}

// scanDir calls visit for every symlink below dir. Unreadable directories
// are logged and skipped.
func (c *Cleaner) scanDir(dir string, visit func(string) error) error {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		c.logger.Debug().Err(err).Str("dir", dir).Msg("Skipping unreadable directory")
		return nil
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		switch {
		case e.Type()&fs.ModeSymlink != 0:
			if err := visit(path); err != nil {
				return err
			}
		case e.IsDir():
			if c.skipDir(path, e.Name()) {
				continue
			}
			if err := c.scanDir(path, visit); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Cleaner) skipDir(path, name string) bool {
	if slices.Contains(c.skipDirs, name) {
		return true
	}
	return paths.IsWithin(c.prober.DotfilesDir(), path)
}
