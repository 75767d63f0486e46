package packs

import (
	"io/fs"
	"iter"
	"path"
	"path/filepath"
	"slices"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultReserved are the package-root names never mirrored
var DefaultReserved = []string{".git", ".gitignore", ".gitattributes", ".gitmodules", paths.RootConfigFile}

// Scripts are never mirrored, wherever they appear
var Scripts = []string{paths.SetupScript, paths.TeardownScript}

// Walker enumerates package entries
type Walker struct {
	fs       types.FS
	reserved []string
	logger   zerolog.Logger
}

// NewWalker creates a Walker. A nil reserved list means DefaultReserved.
func NewWalker(fsys types.FS, reserved []string) *Walker {
	if reserved == nil {
		reserved = DefaultReserved
	}
	return &Walker{
		fs:       fsys,
		reserved: reserved,
		logger:   logging.GetLogger("packs.walker"),
	}
}

// Walk yields every mirrored entry of pkg. Each range over the returned
// sequence re-reads the package. Errors are yielded with an empty entry;
// the walk continues with the next directory unless the consumer stops.
func (w *Walker) Walk(pkg types.Package) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		meta, err := LoadMeta(w.fs, pkg)
		if err != nil {
			yield("", err)
			return
		}
		w.walkDir(pkg.Path, "", meta, yield)
	}
}

// Entries collects Walk into a slice, stopping at the first error
func (w *Walker) Entries(pkg types.Package) ([]string, error) {
	var out []string
	for entry, err := range w.Walk(pkg) {
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// walkDir returns false when the consumer stopped the iteration
func (w *Walker) walkDir(dir, rel string, meta Meta, yield func(string, error) bool) bool {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return yield("", errors.Wrapf(err, errors.ErrIO, "cannot read directory %s", dir).
			WithDetail("path", dir))
	}

	// os.ReadDir sorts, other FS implementations may not
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		switch {
		case a.Name() < b.Name():
			return -1
		case a.Name() > b.Name():
			return 1
		}
		return 0
	})

	for _, e := range entries {
		name := e.Name()
		entry := path.Join(rel, name)

		if w.skip(rel, name, entry, meta) {
			w.logger.Trace().Str("entry", entry).Msg("Skipping entry")
			continue
		}

		switch {
		case e.IsDir():
			if !w.walkDir(filepath.Join(dir, name), entry, meta, yield) {
				return false
			}
		case e.Type().IsRegular():
			if !yield(entry, nil) {
				return false
			}
		default:
			w.logger.Debug().Str("entry", entry).Str("type", e.Type().String()).Msg("Skipping non-regular file")
		}
	}
	return true
}

func (w *Walker) skip(rel, name, entry string, meta Meta) bool {
	if rel == "" && slices.Contains(w.reserved, name) {
		return true
	}
	if slices.Contains(Scripts, name) {
		return true
	}
	return meta.Ignores(entry)
}
