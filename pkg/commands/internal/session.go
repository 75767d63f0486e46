package internal

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/stau/pkg/cleaner"
	"github.com/arthur-debert/stau/pkg/config"
	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/executor"
	"github.com/arthur-debert/stau/pkg/filesystem"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/packs"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/planner"
	"github.com/arthur-debert/stau/pkg/probe"
	"github.com/arthur-debert/stau/pkg/status"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/rs/zerolog"
)

// Session is one read-plan-apply cycle
type Session struct {
	Command types.Command
	Config  *config.Config
	Paths   *paths.Paths
	FS      types.FS
	Prober  *probe.Prober
	Walker  *packs.Walker
	Cleaner *cleaner.Cleaner

	opts   CommonOptions
	logger zerolog.Logger
}

// NewSession validates flags, loads config and resolves directories
func NewSession(cmd types.Command, opts CommonOptions) (*Session, error) {
	logger := logging.GetLogger("commands." + string(cmd))

	if err := ValidateFlags(cmd, opts.DryRun, opts.Force); err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.Load(config.LoadOptions{DotfilesDir: opts.DotfilesDir})
		if err != nil {
			return nil, err
		}
	}

	p, err := paths.New(paths.Options{
		DotfilesDir: firstNonEmpty(opts.DotfilesDir, cfg.Dir),
		TargetDir:   firstNonEmpty(opts.TargetDir, cfg.Target),
	})
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	prober := probe.New(fsys, p.DotfilesDir())
	s := &Session{
		Command: cmd,
		Config:  cfg,
		Paths:   p,
		FS:      fsys,
		Prober:  prober,
		Walker:  packs.NewWalker(fsys, cfg.Walker.Reserved),
		Cleaner: cleaner.New(fsys, prober, p.TargetDir(), cfg.Clean.SkipDirs),
		opts:    opts,
		logger:  logger,
	}

	logger.Debug().
		Str("dotfiles_dir", p.DotfilesDir()).
		Str("target_dir", p.TargetDir()).
		Bool("dry_run", opts.DryRun).
		Bool("force", opts.Force).
		Msg("Session ready")

	return s, nil
}

// Logger returns the command's component logger
func (s *Session) Logger() zerolog.Logger {
	return s.logger
}

// DryRun reports whether the session only simulates
func (s *Session) DryRun() bool {
	return s.opts.DryRun
}

// Planner builds a planner honouring the session's force flag
func (s *Session) Planner(copyBack, prune bool) *planner.Planner {
	return planner.New(planner.Options{
		FS:        s.FS,
		Prober:    s.Prober,
		Walker:    s.Walker,
		Cleaner:   s.Cleaner,
		TargetDir: s.Paths.TargetDir(),
		Force:     s.opts.Force,
		CopyBack:  copyBack,
		Prune:     prune,
		DirMode:   s.Config.Permissions.Directory,
	})
}

// Reporter builds a status reporter
func (s *Session) Reporter() *status.Reporter {
	return status.NewReporter(s.Walker, s.Prober, s.Cleaner, s.Paths)
}

// LoadPackage resolves an existing package by name
func (s *Session) LoadPackage(name string) (types.Package, error) {
	return packs.LoadPackage(s.FS, s.Paths.DotfilesDir(), name)
}

// Apply runs plan through the executor and records the outcome in a Result
func (s *Session) Apply(plan *types.Plan) (*Result, error) {
	defer logging.LogOperationStart(s.logger, "apply "+string(plan.Command))()

	exec := executor.New(executor.Options{FS: s.FS, DryRun: s.opts.DryRun})
	results, err := exec.Apply(plan)
	return &Result{
		Command: plan.Command,
		Package: plan.Package,
		DryRun:  s.opts.DryRun,
		Plan:    plan,
		Actions: results,
	}, err
}

// Hook describes the script hook of kind for pkg, whether or not it exists
func (s *Session) Hook(kind types.ScriptHookKind, pkg types.Package) types.ScriptHook {
	script := paths.SetupScript
	if kind == types.HookTeardown {
		script = paths.TeardownScript
	}
	return types.ScriptHook{
		Kind:    kind,
		Package: pkg.Name,
		Script:  filepath.Join(pkg.Path, script),
		Dir:     s.Paths.TargetDir(),
		Env: map[string]string{
			types.ScriptEnvDir:     s.Paths.DotfilesDir(),
			types.ScriptEnvPackage: pkg.Name,
			types.ScriptEnvTarget:  s.Paths.TargetDir(),
		},
	}
}

// RunHook signals the package script of kind unless disabled, dry-run or
// absent. The outcome is always returned; the error is the script's failure.
func (s *Session) RunHook(ctx context.Context, kind types.ScriptHookKind, pkg types.Package, disabled bool) (*types.HookOutcome, error) {
	hook := s.Hook(kind, pkg)
	outcome := &types.HookOutcome{Hook: hook}

	switch {
	case disabled:
		outcome.Skipped = "disabled by flag"
	case s.opts.DryRun:
		outcome.Skipped = "dry run"
	case s.opts.Scripts == nil:
		outcome.Skipped = "no script runner"
	}
	if outcome.Skipped != "" {
		return outcome, nil
	}

	info, err := s.FS.Stat(hook.Script)
	if err != nil || info.IsDir() {
		outcome.Skipped = "no " + filepath.Base(hook.Script)
		return outcome, nil
	}

	outcome.Ran = true
	if err := s.opts.Scripts.Run(ctx, hook); err != nil {
		outcome.Error = err.Error()
		if !errors.IsErrorCode(err, errors.ErrScriptFailed) {
			err = errors.Wrapf(err, errors.ErrScriptFailed, "%s script of %s failed", kind, pkg.Name).
				WithDetail("path", hook.Script)
		}
		return outcome, err
	}
	return outcome, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
