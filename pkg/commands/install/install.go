// Package install links every file of a package into the target directory.
package install

import (
	"context"

	"github.com/arthur-debert/stau/pkg/commands/internal"
	"github.com/arthur-debert/stau/pkg/types"
)

// Options holds options for the install command
type Options struct {
	internal.CommonOptions

	Package string

	// NoSetup skips the package's setup.sh
	NoSetup bool
}

// Install plans and applies the package's links, then signals setup.sh when
// every link is in place
func Install(ctx context.Context, opts Options) (*internal.Result, error) {
	s, err := internal.NewSession(types.CommandInstall, opts.CommonOptions)
	if err != nil {
		return nil, err
	}
	logger := s.Logger()

	pkg, err := s.LoadPackage(opts.Package)
	if err != nil {
		return nil, err
	}

	plan, err := s.Planner(s.Config.Uninstall.CopyBack, false).Install(pkg)
	if err != nil {
		return nil, err
	}

	result, err := s.Apply(plan)
	if err != nil {
		return result, err
	}

	if result.HasConflicts() {
		result.Hook = &types.HookOutcome{Hook: s.Hook(types.HookSetup, pkg), Skipped: "conflicts remain"}
		logger.Info().Str("package", pkg.Name).Int("conflicts", len(plan.Conflicts)).Msg("Install left conflicts")
		return result, nil
	}

	result.Hook, err = s.RunHook(ctx, types.HookSetup, pkg, opts.NoSetup)
	if err != nil {
		return result, err
	}

	logger.Info().
		Str("package", pkg.Name).
		Int("actions", len(plan.Actions)).
		Bool("dry_run", result.DryRun).
		Msg("Install completed")
	return result, nil
}
