package executor

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/filesystem"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/rs/zerolog"
)

// tempPattern names temporary files created next to their destination
const tempPattern = ".stau-tmp-*"

// Options contains configuration for the executor
type Options struct {
	DryRun bool
	Logger zerolog.Logger
	// Filesystem operations interface for testing
	FS types.FS
}

// Executor applies or simulates plans
type Executor struct {
	dryRun bool
	logger zerolog.Logger
	fs     types.FS
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	return &Executor{
		dryRun: opts.DryRun,
		logger: logger,
		fs:     fsys,
	}
}

// DryRun reports whether the executor only simulates
func (e *Executor) DryRun() bool {
	return e.dryRun
}

// Apply executes or simulates plan. It returns one result per attempted
// action. In real mode the returned error names the failing action.
func (e *Executor) Apply(plan *types.Plan) ([]types.ActionResult, error) {
	if e.dryRun {
		return e.simulate(plan), nil
	}

	conflicts := map[string]bool{}
	if !plan.Force {
		conflicts = plan.ConflictPaths()
	}

	results := make([]types.ActionResult, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		start := time.Now()

		if conflicts[action.Target] || (action.Kind == types.ActionCopyFileIntoPackage && conflicts[action.Source]) {
			e.logger.Debug().Str("target", action.Target).Msg("Skipping action on conflicting path")
			results = append(results, types.ActionResult{
				Action:   action,
				Status:   types.StatusSkipped,
				Message:  "path is in conflict",
				Duration: time.Since(start),
			})
			continue
		}

		e.logger.Debug().
			Str("kind", string(action.Kind)).
			Str("target", action.Target).
			Str("source", action.Source).
			Msg("Executing action")

		msg, err := e.execute(action)
		if err != nil {
			wrapped := wrapActionError(err, action)
			e.logger.Error().Err(err).Str("kind", string(action.Kind)).Str("target", action.Target).Msg("Action failed")
			results = append(results, types.ActionResult{
				Action:   action,
				Status:   types.StatusFailed,
				Message:  err.Error(),
				Error:    wrapped,
				Duration: time.Since(start),
			})
			return results, wrapped
		}

		results = append(results, types.ActionResult{
			Action:   action,
			Status:   types.StatusApplied,
			Message:  msg,
			Duration: time.Since(start),
		})
	}

	e.logger.Info().
		Str("command", string(plan.Command)).
		Str("package", plan.Package).
		Int("actions", len(results)).
		Msg("Plan applied")

	return results, nil
}

func (e *Executor) execute(a types.Action) (string, error) {
	switch a.Kind {
	case types.ActionCreateSymlink:
		if a.Replace {
			return "", e.replaceWithSymlink(a.Source, a.Target)
		}
		return "", e.fs.Symlink(a.Source, a.Target)

	case types.ActionRemoveSymlink:
		info, err := e.fs.Lstat(a.Target)
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			return "", fmt.Errorf("%s is no longer a symlink", a.Target)
		}
		return "", e.fs.Remove(a.Target)

	case types.ActionCopyFileBack:
		// Read through the link, which still points at the package file
		return "", e.atomicCopy(a.Target, a.Target, a.Mode)

	case types.ActionCopyFileIntoPackage:
		if _, err := e.fs.Lstat(a.Target); err == nil {
			return "", fmt.Errorf("%s already exists", a.Target)
		}
		return "", e.atomicCopy(a.Source, a.Target, a.Mode)

	case types.ActionCreateDirectory:
		err := e.fs.Mkdir(a.Target, a.Mode)
		if err != nil && stderrors.Is(err, fs.ErrExist) {
			if info, serr := e.fs.Stat(a.Target); serr == nil && info.IsDir() {
				return "already exists", nil
			}
		}
		return "", err

	case types.ActionRemoveEmptyDirectory:
		err := e.fs.Remove(a.Target)
		if err != nil && (stderrors.Is(err, syscall.ENOTEMPTY) || stderrors.Is(err, syscall.EEXIST)) {
			return "not empty, kept", nil
		}
		return "", err

	case types.ActionRemovePath:
		return "", e.fs.RemoveAll(a.Target)

	default:
		return "", fmt.Errorf("unknown action kind %q", a.Kind)
	}
}

// atomicCopy copies src into a temp file next to dst, applies mode, syncs
// and renames it over dst
func (e *Executor) atomicCopy(src, dst string, mode os.FileMode) (err error) {
	in, err := e.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	tmp, err := e.fs.CreateTemp(filepath.Dir(dst), tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = e.fs.Remove(tmpName)
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if mode == 0 {
		mode = 0644
	}
	if err = e.fs.Chmod(tmpName, mode); err != nil {
		return err
	}
	return e.fs.Rename(tmpName, dst)
}

// replaceWithSymlink creates the link under a temporary name and renames it
// over target, so target is never missing
func (e *Executor) replaceWithSymlink(dest, target string) (err error) {
	tmp, err := e.fs.CreateTemp(filepath.Dir(target), tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	_ = tmp.Close()
	if err = e.fs.Remove(tmpName); err != nil {
		return err
	}
	if err = e.fs.Symlink(dest, tmpName); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = e.fs.Remove(tmpName)
		}
	}()
	return e.fs.Rename(tmpName, target)
}

func wrapActionError(err error, a types.Action) error {
	code := errors.ErrIO
	if stderrors.Is(err, fs.ErrPermission) {
		code = errors.ErrTargetUnwritable
	}
	return errors.Wrapf(err, code, "%s failed for %s", a.Kind, a.Target).
		WithDetail("action", string(a.Kind)).
		WithDetail("path", a.Target)
}
