// Package restow refreshes a package's links after files were added to or
// removed from it.
package restow

import (
	"context"

	"github.com/arthur-debert/stau/pkg/commands/internal"
	"github.com/arthur-debert/stau/pkg/types"
)

// Options holds options for the restow command
type Options struct {
	internal.CommonOptions

	Package string

	// RunSetup signals setup.sh after relinking
	RunSetup bool
}

// Restow removes the package's broken links and links whatever is missing.
// An unchanged, installed package produces an empty plan.
func Restow(ctx context.Context, opts Options) (*internal.Result, error) {
	s, err := internal.NewSession(types.CommandRestow, opts.CommonOptions)
	if err != nil {
		return nil, err
	}

	pkg, err := s.LoadPackage(opts.Package)
	if err != nil {
		return nil, err
	}

	plan, err := s.Planner(s.Config.Uninstall.CopyBack, false).Restow(pkg)
	if err != nil {
		return nil, err
	}

	result, err := s.Apply(plan)
	if err != nil {
		return result, err
	}

	if opts.RunSetup {
		if result.HasConflicts() {
			result.Hook = &types.HookOutcome{Hook: s.Hook(types.HookSetup, pkg), Skipped: "conflicts remain"}
			return result, nil
		}
		result.Hook, err = s.RunHook(ctx, types.HookSetup, pkg, false)
		if err != nil {
			return result, err
		}
	}

	logger := s.Logger()
	logger.Info().
		Str("package", pkg.Name).
		Int("actions", len(plan.Actions)).
		Bool("dry_run", result.DryRun).
		Msg("Restow completed")
	return result, nil
}
