// Package clean removes broken links that point into packages.
package clean

import (
	"github.com/arthur-debert/stau/pkg/commands/internal"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/types"
)

// Options holds options for the clean command
type Options struct {
	internal.CommonOptions

	// Packages limits the cleanup; every package when empty. A package
	// need not exist any more for its stale links to be cleaned.
	Packages []string
}

// Clean removes broken links into the dotfiles directory. Healthy links and
// links pointing elsewhere are never touched.
func Clean(opts Options) (*internal.Result, error) {
	s, err := internal.NewSession(types.CommandClean, opts.CommonOptions)
	if err != nil {
		return nil, err
	}

	for _, name := range opts.Packages {
		if err := paths.ValidatePackageName(name); err != nil {
			return nil, err
		}
	}

	plan, err := s.Planner(false, false).Clean(opts.Packages...)
	if err != nil {
		return nil, err
	}

	result, err := s.Apply(plan)
	if err != nil {
		return result, err
	}

	logger := s.Logger()
	logger.Info().
		Strs("packages", opts.Packages).
		Int("removed", len(plan.Actions)).
		Bool("dry_run", result.DryRun).
		Msg("Clean completed")
	return result, nil
}
