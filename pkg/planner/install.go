package planner

import (
	"fmt"

	"github.com/arthur-debert/stau/pkg/types"
)

// Install plans linking every entry of pkg into the target
func (p *Planner) Install(pkg types.Package) (*types.Plan, error) {
	b := p.newBuilder(types.CommandInstall, pkg.Name)

	entries, err := p.entries(pkg)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if err := p.installEntry(b, pkg, entry, false); err != nil {
			return nil, err
		}
	}

	p.logPlan(b.plan)
	return b.plan, nil
}

// installEntry plans one link. With relink set, stale links of this package
// are replaced without requiring force (restow).
func (p *Planner) installEntry(b *builder, pkg types.Package, entry string, relink bool) error {
	target := p.targetPath(entry)
	source := pkg.FilePath(entry)
	link := types.Action{Kind: types.ActionCreateSymlink, Source: source, Target: target, Entry: entry}

	conflict, err := p.ensureParents(b, target, entry, pkg)
	if err != nil {
		return err
	}
	if conflict != nil {
		b.plan.AddConflict(*conflict)
		return nil
	}

	state, err := p.classify(b, target, pkg)
	if err != nil {
		return err
	}

	conflictFor := func(reason string) types.Conflict {
		return types.Conflict{
			Path:     target,
			Entry:    entry,
			Current:  state,
			Required: types.ActionCreateSymlink,
			Reason:   reason,
		}
	}

	switch state.Kind {
	case types.TargetAbsent:
		b.plan.AddAction(link)

	case types.TargetManagedLink:
		if state.Entry == entry && !state.Broken {
			return nil
		}
		if !relink && !p.force {
			reason := fmt.Sprintf("stale link to %s; use --force or restow to relink it", state.Destination)
			if state.Broken {
				reason = fmt.Sprintf("broken link to %s; use --force or restow to relink it", state.Destination)
			}
			b.plan.AddConflict(conflictFor(reason))
			return nil
		}
		b.plan.AddAction(types.Action{Kind: types.ActionRemoveSymlink, Target: target, Entry: entry})
		b.plan.AddAction(link)

	case types.TargetForeignLink:
		if !p.force {
			reason := fmt.Sprintf("existing symlink to %s; remove it or use --force", state.Destination)
			if state.Package != "" {
				reason = fmt.Sprintf("already linked by package %s; uninstall it first or use --force", state.Package)
			}
			b.plan.AddConflict(conflictFor(reason))
			return nil
		}
		b.plan.AddAction(types.Action{Kind: types.ActionRemovePath, Target: target, Entry: entry})
		b.plan.AddAction(link)

	case types.TargetRegularFile, types.TargetDirectory:
		if state.Package != "" {
			if state.Package == pkg.Name && state.Entry == entry {
				// Reached through a symlinked parent that already
				// points into this package.
				return nil
			}
			b.plan.AddConflict(conflictFor(fmt.Sprintf("path resolves into package %s through a symlinked parent", state.Package)))
			return nil
		}
		if !p.force {
			reason := "existing file; adopt it with 'stau adopt " + pkg.Name + " " + target + "' or use --force to replace it"
			if state.Kind == types.TargetDirectory {
				reason = "existing directory; remove it or use --force to replace it"
			}
			b.plan.AddConflict(conflictFor(reason))
			return nil
		}
		b.plan.AddAction(types.Action{Kind: types.ActionRemovePath, Target: target, Entry: entry})
		b.plan.AddAction(link)
	}
	return nil
}

func (p *Planner) logPlan(plan *types.Plan) {
	p.logger.Info().
		Str("command", string(plan.Command)).
		Str("package", plan.Package).
		Int("actions", len(plan.Actions)).
		Int("conflicts", len(plan.Conflicts)).
		Bool("force", plan.Force).
		Msg("Plan built")
}
