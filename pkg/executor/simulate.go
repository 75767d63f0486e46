package executor

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/stau/pkg/types"
)

type nodeKind int

const (
	nodeAbsent nodeKind = iota
	nodeFile
	nodeDir
	nodeLink
)

// overlay records the effect of simulated actions on top of the real tree
type overlay struct {
	fs    types.FS
	nodes map[string]nodeKind
}

func newOverlay(fsys types.FS) *overlay {
	return &overlay{fs: fsys, nodes: map[string]nodeKind{}}
}

func (o *overlay) set(path string, kind nodeKind) {
	o.nodes[filepath.Clean(path)] = kind
}

// kind returns what would be at path, without following a final link
func (o *overlay) kind(path string) nodeKind {
	path = filepath.Clean(path)
	if k, ok := o.nodes[path]; ok {
		return k
	}
	// a removed ancestor takes its children with it
	for child, dir := path, filepath.Dir(path); dir != child; child, dir = dir, filepath.Dir(dir) {
		if k, ok := o.nodes[dir]; ok {
			if k == nodeAbsent {
				return nodeAbsent
			}
			break
		}
	}
	info, err := o.fs.Lstat(path)
	if err != nil {
		return nodeAbsent
	}
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return nodeLink
	case info.IsDir():
		return nodeDir
	default:
		return nodeFile
	}
}

// isDir reports whether path would be a directory, following links
func (o *overlay) isDir(path string) bool {
	switch o.kind(path) {
	case nodeDir:
		return true
	case nodeLink:
		if _, simulated := o.nodes[filepath.Clean(path)]; simulated {
			return false
		}
		info, err := o.fs.Stat(path)
		return err == nil && info.IsDir()
	default:
		return false
	}
}

// readable reports whether path would resolve to readable content
func (o *overlay) readable(path string) bool {
	switch o.kind(path) {
	case nodeFile:
		return true
	case nodeLink:
		if _, simulated := o.nodes[filepath.Clean(path)]; simulated {
			return true
		}
		info, err := o.fs.Stat(path)
		return err == nil && !info.IsDir()
	default:
		return false
	}
}

func (e *Executor) simulate(plan *types.Plan) []types.ActionResult {
	conflicts := map[string]bool{}
	if !plan.Force {
		conflicts = plan.ConflictPaths()
	}

	o := newOverlay(e.fs)
	results := make([]types.ActionResult, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		start := time.Now()
		result := types.ActionResult{Action: action}

		if conflicts[action.Target] || (action.Kind == types.ActionCopyFileIntoPackage && conflicts[action.Source]) {
			result.Status = types.StatusSkipped
			result.Message = "path is in conflict"
		} else if err := o.check(action); err != nil {
			result.Status = types.StatusFailed
			result.Message = err.Error()
			result.Error = wrapActionError(err, action)
		} else {
			o.apply(action)
			result.Status = types.StatusSimulated
		}

		result.Duration = time.Since(start)
		e.logger.Debug().
			Str("kind", string(action.Kind)).
			Str("target", action.Target).
			Str("status", string(result.Status)).
			Msg("Simulated action")
		results = append(results, result)
	}
	return results
}

func (o *overlay) check(a types.Action) error {
	parent := filepath.Dir(a.Target)
	switch a.Kind {
	case types.ActionCreateSymlink:
		if !o.isDir(parent) {
			return fmt.Errorf("parent directory %s does not exist", parent)
		}
		if !a.Replace && o.kind(a.Target) != nodeAbsent {
			return fmt.Errorf("%s already exists", a.Target)
		}
	case types.ActionRemoveSymlink:
		if o.kind(a.Target) != nodeLink {
			return fmt.Errorf("%s is not a symlink", a.Target)
		}
	case types.ActionCopyFileBack:
		if o.kind(a.Target) != nodeLink || !o.readable(a.Target) {
			return fmt.Errorf("%s does not resolve to a file", a.Target)
		}
	case types.ActionCopyFileIntoPackage:
		if !o.readable(a.Source) {
			return fmt.Errorf("%s is not readable", a.Source)
		}
		if !o.isDir(parent) {
			return fmt.Errorf("parent directory %s does not exist", parent)
		}
		if o.kind(a.Target) != nodeAbsent {
			return fmt.Errorf("%s already exists", a.Target)
		}
	case types.ActionCreateDirectory:
		if !o.isDir(parent) {
			return fmt.Errorf("parent directory %s does not exist", parent)
		}
		if k := o.kind(a.Target); k != nodeAbsent && !o.isDir(a.Target) {
			return fmt.Errorf("%s exists and is not a directory", a.Target)
		}
	case types.ActionRemoveEmptyDirectory:
		if o.kind(a.Target) != nodeDir {
			return fmt.Errorf("%s is not a directory", a.Target)
		}
	case types.ActionRemovePath:
	default:
		return fmt.Errorf("unknown action kind %q", a.Kind)
	}
	return nil
}

func (o *overlay) apply(a types.Action) {
	switch a.Kind {
	case types.ActionCreateSymlink:
		o.set(a.Target, nodeLink)
	case types.ActionRemoveSymlink, types.ActionRemovePath, types.ActionRemoveEmptyDirectory:
		o.set(a.Target, nodeAbsent)
	case types.ActionCopyFileBack, types.ActionCopyFileIntoPackage:
		o.set(a.Target, nodeFile)
	case types.ActionCreateDirectory:
		if o.kind(a.Target) == nodeAbsent {
			o.set(a.Target, nodeDir)
		}
	}
}
