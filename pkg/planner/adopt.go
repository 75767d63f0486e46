package planner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/probe"
	"github.com/arthur-debert/stau/pkg/types"
)

// Adopt plans moving existing target files into pkg and replacing each with
// a link. Directories are adopted file by file. Every file must exist;
// a missing one fails the whole command before anything is planned.
func (p *Planner) Adopt(pkg types.Package, files []string) (*types.Plan, error) {
	b := p.newBuilder(types.CommandAdopt, pkg.Name)

	abs := make([]string, 0, len(files))
	for _, f := range files {
		path, err := paths.NormalizePath(f)
		if err != nil {
			return nil, err
		}
		if _, err := p.fs.Lstat(path); err != nil {
			if probe.IsNotExist(err) {
				return nil, errors.Newf(errors.ErrAdoptSourceMissing, "cannot adopt %s: no such file", path).
					WithDetail("path", path)
			}
			return nil, ioError(err, path)
		}
		abs = append(abs, path)
	}

	for _, path := range abs {
		if err := p.adoptPath(b, pkg, path); err != nil {
			return nil, err
		}
	}

	p.logPlan(b.plan)
	return b.plan, nil
}

func (p *Planner) adoptPath(b *builder, pkg types.Package, path string) error {
	if !paths.IsWithin(p.targetDir, path) || path == p.targetDir {
		b.plan.AddConflict(types.Conflict{
			Path:     path,
			Current:  types.TargetState{Kind: types.TargetRegularFile, Path: path},
			Required: types.ActionCopyFileIntoPackage,
			Reason:   fmt.Sprintf("outside the target directory %s; only files under it can be adopted", p.targetDir),
		})
		return nil
	}

	rel, err := filepath.Rel(p.targetDir, path)
	if err != nil {
		return ioError(err, path)
	}
	entry := filepath.ToSlash(rel)

	state, err := p.prober.Classify(path, pkg)
	if err != nil {
		return err
	}

	conflict := func(reason string) {
		b.plan.AddConflict(types.Conflict{
			Path:     path,
			Entry:    entry,
			Current:  state,
			Required: types.ActionCopyFileIntoPackage,
			Reason:   reason,
		})
	}

	switch state.Kind {
	case types.TargetAbsent:
		conflict("no longer exists")
	case types.TargetManagedLink:
		conflict(fmt.Sprintf("already adopted into package %s", pkg.Name))
	case types.TargetForeignLink:
		conflict(fmt.Sprintf("is a symlink to %s; only regular files can be adopted", state.Destination))
	case types.TargetRegularFile:
		if state.Package != "" {
			conflict(fmt.Sprintf("already lives in package %s", state.Package))
			return nil
		}
		return p.adoptFile(b, pkg, path, entry, state)
	case types.TargetDirectory:
		if state.Package != "" {
			conflict(fmt.Sprintf("already lives in package %s", state.Package))
			return nil
		}
		return p.adoptDir(b, pkg, path)
	}
	return nil
}

func (p *Planner) adoptDir(b *builder, pkg types.Package, dir string) error {
	children, err := p.fs.ReadDir(dir)
	if err != nil {
		return ioError(err, dir)
	}
	for _, child := range children {
		if err := p.adoptPath(b, pkg, filepath.Join(dir, child.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (p *Planner) adoptFile(b *builder, pkg types.Package, path, entry string, state types.TargetState) error {
	dest := pkg.FilePath(entry)

	if _, err := p.fs.Lstat(dest); err == nil || b.created[dest] {
		b.plan.AddConflict(types.Conflict{
			Path:     path,
			Entry:    entry,
			Current:  state,
			Required: types.ActionCopyFileIntoPackage,
			Reason:   fmt.Sprintf("%s already exists in package %s", entry, pkg.Name),
		})
		return nil
	} else if !probe.IsNotExist(err) {
		return ioError(err, dest)
	}

	if err := p.ensurePackageDirs(b, pkg, filepath.Dir(dest), entry); err != nil {
		return err
	}

	info, err := p.fs.Lstat(path)
	if err != nil {
		return ioError(err, path)
	}

	b.plan.AddAction(types.Action{
		Kind:   types.ActionCopyFileIntoPackage,
		Source: path,
		Target: dest,
		Entry:  entry,
		Mode:   info.Mode().Perm(),
	})
	b.plan.AddAction(types.Action{
		Kind:    types.ActionCreateSymlink,
		Source:  dest,
		Target:  path,
		Entry:   entry,
		Replace: true,
	})
	b.created[dest] = true
	return nil
}

// ensurePackageDirs plans the package directory and its subdirectories down
// to dir, creating the package itself when it does not exist yet
func (p *Planner) ensurePackageDirs(b *builder, pkg types.Package, dir, entry string) error {
	var missing []string
	for d := dir; ; d = filepath.Dir(d) {
		if b.created[d] {
			break
		}
		info, err := p.fs.Lstat(d)
		if err == nil {
			if !info.IsDir() && info.Mode()&fs.ModeSymlink == 0 {
				return errors.Newf(errors.ErrPackageInvalid, "%s exists in package %s and is not a directory", d, pkg.Name).
					WithDetail("path", d)
			}
			break
		}
		if !probe.IsNotExist(err) {
			return ioError(err, d)
		}
		missing = append(missing, d)
		if d == pkg.Path || !strings.HasPrefix(d, pkg.Path) {
			break
		}
	}

	for i := len(missing) - 1; i >= 0; i-- {
		b.plan.AddAction(types.Action{Kind: types.ActionCreateDirectory, Target: missing[i], Entry: entry, Mode: p.dirMode})
		b.created[missing[i]] = true
	}
	return nil
}
