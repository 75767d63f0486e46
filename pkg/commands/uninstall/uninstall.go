// Package uninstall removes a package's links from the target directory,
// by default leaving copies of the package files in their place.
package uninstall

import (
	"context"

	"github.com/arthur-debert/stau/pkg/commands/internal"
	"github.com/arthur-debert/stau/pkg/types"
)

// Options holds options for the uninstall command
type Options struct {
	internal.CommonOptions

	Package string

	// NoTeardown skips the package's teardown.sh
	NoTeardown bool

	// NoCopyBack removes links instead of replacing them with copies
	NoCopyBack bool

	// Prune removes directories left empty by the removed links
	Prune bool
}

// Uninstall signals teardown.sh, then applies the uninstall plan. A failing
// teardown script is logged and does not stop the uninstall.
func Uninstall(ctx context.Context, opts Options) (*internal.Result, error) {
	s, err := internal.NewSession(types.CommandUninstall, opts.CommonOptions)
	if err != nil {
		return nil, err
	}
	logger := s.Logger()

	pkg, err := s.LoadPackage(opts.Package)
	if err != nil {
		return nil, err
	}

	copyBack := s.Config.Uninstall.CopyBack && !opts.NoCopyBack
	prune := s.Config.Uninstall.Prune || opts.Prune
	plan, err := s.Planner(copyBack, prune).Uninstall(pkg)
	if err != nil {
		return nil, err
	}

	hook, hookErr := s.RunHook(ctx, types.HookTeardown, pkg, opts.NoTeardown)
	if hookErr != nil {
		logger.Warn().Err(hookErr).Str("package", pkg.Name).Msg("Teardown script failed, continuing uninstall")
	}

	result, err := s.Apply(plan)
	result.Hook = hook
	if err != nil {
		return result, err
	}

	logger.Info().
		Str("package", pkg.Name).
		Bool("copy_back", copyBack).
		Bool("prune", prune).
		Int("actions", len(plan.Actions)).
		Bool("dry_run", result.DryRun).
		Msg("Uninstall completed")
	return result, nil
}
