package planner

import (
	"github.com/arthur-debert/stau/pkg/types"
)

// Restow plans bringing pkg's links in line with the package contents:
// links to package files that no longer exist are removed, stale links are
// replaced and missing links are created. An entry already correctly linked
// contributes no actions.
func (p *Planner) Restow(pkg types.Package) (*types.Plan, error) {
	b := p.newBuilder(types.CommandRestow, pkg.Name)

	if p.cleaner != nil {
		broken, err := p.cleaner.Scan(pkg.Name)
		if err != nil {
			return nil, err
		}
		for _, link := range broken {
			b.plan.AddAction(types.Action{Kind: types.ActionRemoveSymlink, Target: link.Path, Entry: link.Entry})
			b.removed[link.Path] = true
		}
	}

	entries, err := p.entries(pkg)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if err := p.installEntry(b, pkg, entry, true); err != nil {
			return nil, err
		}
	}

	p.logPlan(b.plan)
	return b.plan, nil
}
