package planner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stau/pkg/cleaner"
	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/packs"
	"github.com/arthur-debert/stau/pkg/probe"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Planner
type Options struct {
	FS        types.FS
	Prober    *probe.Prober
	Walker    *packs.Walker
	Cleaner   *cleaner.Cleaner
	TargetDir string

	// Force turns conflicts with foreign objects into deletions
	Force bool

	// CopyBack makes uninstall replace links with copies of the package files
	CopyBack bool

	// Prune makes uninstall remove directories its removals leave empty
	Prune bool

	// DirMode is used for directories the plan creates
	DirMode os.FileMode
}

// Planner builds plans for one package at a time
type Planner struct {
	fs        types.FS
	prober    *probe.Prober
	walker    *packs.Walker
	cleaner   *cleaner.Cleaner
	targetDir string
	force     bool
	copyBack  bool
	prune     bool
	dirMode   os.FileMode
	logger    zerolog.Logger
}

// New creates a Planner
func New(opts Options) *Planner {
	dirMode := opts.DirMode
	if dirMode == 0 {
		dirMode = 0755
	}
	return &Planner{
		fs:        opts.FS,
		prober:    opts.Prober,
		walker:    opts.Walker,
		cleaner:   opts.Cleaner,
		targetDir: filepath.Clean(opts.TargetDir),
		force:     opts.Force,
		copyBack:  opts.CopyBack,
		prune:     opts.Prune,
		dirMode:   dirMode,
		logger:    logging.GetLogger("planner"),
	}
}

// builder accumulates one plan and remembers what earlier actions in it
// will have done to the tree
type builder struct {
	plan *types.Plan

	// created holds directories the plan creates
	created map[string]bool

	// removed holds paths the plan removes
	removed map[string]bool

	// parents caches the verdict for ancestor directories
	parents map[string]*types.Conflict
}

func (p *Planner) newBuilder(cmd types.Command, pkg string) *builder {
	return &builder{
		plan:    &types.Plan{Command: cmd, Package: pkg, Force: p.force},
		created: make(map[string]bool),
		removed: make(map[string]bool),
		parents: make(map[string]*types.Conflict),
	}
}

// classify probes path, taking earlier removals in the plan into account
func (p *Planner) classify(b *builder, path string, pkg types.Package) (types.TargetState, error) {
	if b.removed[path] || b.created[filepath.Dir(path)] {
		return types.TargetState{Kind: types.TargetAbsent, Path: path}, nil
	}
	return p.prober.Classify(path, pkg)
}

// ensureParents emits CreateDirectory for missing ancestors of path inside
// the target. It returns a conflict when an ancestor is in the way and force
// is off (or cannot help).
func (p *Planner) ensureParents(b *builder, path, entry string, pkg types.Package) (*types.Conflict, error) {
	rel, err := filepath.Rel(p.targetDir, filepath.Dir(path))
	if err != nil || rel == "." {
		return nil, nil
	}

	dir := p.targetDir
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		dir = filepath.Join(dir, part)

		if b.created[dir] {
			continue
		}

		if c, seen := b.parents[dir]; seen {
			if c != nil {
				conflict := *c
				conflict.Entry = entry
				return &conflict, nil
			}
			continue
		}

		state, err := p.classify(b, dir, pkg)
		if err != nil {
			return nil, err
		}

		conflict := p.checkParent(b, dir, entry, state)
		b.parents[dir] = conflict
		if conflict != nil {
			return conflict, nil
		}
	}
	return nil, nil
}

func (p *Planner) checkParent(b *builder, dir, entry string, state types.TargetState) *types.Conflict {
	switch state.Kind {
	case types.TargetAbsent:
		b.plan.AddAction(types.Action{Kind: types.ActionCreateDirectory, Target: dir, Entry: entry, Mode: p.dirMode})
		b.created[dir] = true
		return nil
	case types.TargetDirectory:
		return nil
	case types.TargetManagedLink, types.TargetForeignLink:
		if !state.Broken {
			info, err := p.fs.Stat(dir)
			if err == nil && info.IsDir() {
				return nil
			}
		}
	case types.TargetRegularFile:
	}

	reason := "parent path " + dir + " is " + state.Describe() + ", not a directory"
	deletable := state.IsLink() || state.Package == ""
	if p.force && deletable {
		p.logger.Debug().Str("path", dir).Msg("Clearing non-directory parent")
		b.plan.AddAction(types.Action{Kind: types.ActionRemovePath, Target: dir, Entry: entry})
		b.plan.AddAction(types.Action{Kind: types.ActionCreateDirectory, Target: dir, Entry: entry, Mode: p.dirMode})
		b.removed[dir] = true
		b.created[dir] = true
		return nil
	}
	if !deletable {
		reason += "; it lives inside package " + state.Package + " and is never deleted"
	} else {
		reason += "; remove it or use --force"
	}
	return &types.Conflict{
		Path:     dir,
		Entry:    entry,
		Current:  state,
		Required: types.ActionCreateDirectory,
		Reason:   reason,
	}
}

// entries collects the package walk
func (p *Planner) entries(pkg types.Package) ([]string, error) {
	entries, err := p.walker.Entries(pkg)
	if err != nil {
		return nil, err
	}
	p.logger.Debug().Str("package", pkg.Name).Int("entries", len(entries)).Msg("Walked package")
	return entries, nil
}

func (p *Planner) targetPath(entry string) string {
	return filepath.Join(p.targetDir, filepath.FromSlash(entry))
}

func ioError(err error, path string) error {
	if errors.GetErrorCode(err) != errors.ErrUnknown {
		return err
	}
	return errors.Wrapf(err, errors.ErrIO, "cannot inspect %s", path).WithDetail("path", path)
}
