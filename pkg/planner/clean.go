package planner

import (
	"strings"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/types"
)

// Clean plans removing broken links into packages, optionally limited to
// the given packages
func (p *Planner) Clean(packages ...string) (*types.Plan, error) {
	if p.cleaner == nil {
		return nil, errors.New(errors.ErrInternal, "clean requires a cleaner")
	}

	b := p.newBuilder(types.CommandClean, strings.Join(packages, ","))

	broken, err := p.cleaner.Scan(packages...)
	if err != nil {
		return nil, err
	}
	for _, link := range broken {
		b.plan.AddAction(types.Action{Kind: types.ActionRemoveSymlink, Target: link.Path, Entry: link.Entry})
	}

	p.logPlan(b.plan)
	return b.plan, nil
}
