package planner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/stau/pkg/types"
)

// Uninstall plans removing every managed link of pkg. With copy-back on,
// each link is replaced by a copy of the package file; otherwise links are
// removed. Directories left empty are kept unless pruning is enabled.
func (p *Planner) Uninstall(pkg types.Package) (*types.Plan, error) {
	b := p.newBuilder(types.CommandUninstall, pkg.Name)

	entries, err := p.entries(pkg)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if err := p.uninstallEntry(b, pkg, entry); err != nil {
			return nil, err
		}
	}

	if p.prune {
		if err := p.removeEmptyDirs(b); err != nil {
			return nil, err
		}
	}

	p.logPlan(b.plan)
	return b.plan, nil
}

func (p *Planner) uninstallEntry(b *builder, pkg types.Package, entry string) error {
	target := p.targetPath(entry)

	state, err := p.classify(b, target, pkg)
	if err != nil {
		return err
	}

	// Only links into this package are ours to remove
	if state.Kind != types.TargetManagedLink {
		return nil
	}

	remove := types.Action{Kind: types.ActionRemoveSymlink, Target: target, Entry: entry}

	if state.Broken {
		if !p.force {
			b.plan.AddConflict(types.Conflict{
				Path:     target,
				Entry:    entry,
				Current:  state,
				Required: types.ActionCopyFileBack,
				Reason:   fmt.Sprintf("broken link to %s cannot be copied back; use --force to remove it", state.Destination),
			})
			return nil
		}
		b.plan.AddAction(remove)
		b.removed[target] = true
		return nil
	}

	if !p.copyBack {
		b.plan.AddAction(remove)
		b.removed[target] = true
		return nil
	}

	// Copy what the link actually points at, which may be another entry
	source := pkg.FilePath(state.Entry)
	info, err := p.fs.Stat(source)
	if err != nil {
		return ioError(err, source)
	}
	if info.IsDir() {
		if !p.force {
			b.plan.AddConflict(types.Conflict{
				Path:     target,
				Entry:    entry,
				Current:  state,
				Required: types.ActionCopyFileBack,
				Reason:   fmt.Sprintf("link to package directory %s cannot be copied back; use --force or --no-copy-back to remove it", state.Destination),
			})
			return nil
		}
		b.plan.AddAction(remove)
		b.removed[target] = true
		return nil
	}
	b.plan.AddAction(types.Action{
		Kind:   types.ActionCopyFileBack,
		Source: source,
		Target: target,
		Entry:  entry,
		Mode:   info.Mode().Perm(),
	})
	return nil
}

// removeEmptyDirs plans RemoveEmptyDirectory for ancestors of removed links
// that will have no other children, deepest first. The target root is never
// removed.
func (p *Planner) removeEmptyDirs(b *builder) error {
	candidates := make(map[string]bool)
	for path := range b.removed {
		for dir := filepath.Dir(path); dir != p.targetDir && strings.HasPrefix(dir, p.targetDir+string(filepath.Separator)); dir = filepath.Dir(dir) {
			candidates[dir] = true
		}
	}

	dirs := make([]string, 0, len(candidates))
	for dir := range candidates {
		dirs = append(dirs, dir)
	}
	sort.Slice(dirs, func(i, j int) bool {
		di, dj := strings.Count(dirs[i], string(filepath.Separator)), strings.Count(dirs[j], string(filepath.Separator))
		if di != dj {
			return di > dj
		}
		return dirs[i] < dirs[j]
	})

	for _, dir := range dirs {
		info, err := p.fs.Lstat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		children, err := p.fs.ReadDir(dir)
		if err != nil {
			return ioError(err, dir)
		}
		empty := true
		for _, child := range children {
			if !b.removed[filepath.Join(dir, child.Name())] {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		b.plan.AddAction(types.Action{Kind: types.ActionRemoveEmptyDirectory, Target: dir})
		b.removed[dir] = true
	}
	return nil
}
