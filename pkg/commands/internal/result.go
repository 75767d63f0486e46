package internal

import (
	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/types"
)

// Result is what a command reports back to the caller
type Result struct {
	Command types.Command         `json:"command" yaml:"command"`
	Package string                `json:"package,omitempty" yaml:"package,omitempty"`
	DryRun  bool                  `json:"dry_run" yaml:"dry_run"`
	Plan    *types.Plan           `json:"plan,omitempty" yaml:"plan,omitempty"`
	Actions []types.ActionResult  `json:"actions,omitempty" yaml:"actions,omitempty"`
	Hook    *types.HookOutcome    `json:"hook,omitempty" yaml:"hook,omitempty"`
	Status  []types.PackageStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// HasConflicts reports whether the plan left conflicts unresolved. A forced
// plan only records the conflicts force could not clear, so they count too.
func (r *Result) HasConflicts() bool {
	return r.Plan != nil && r.Plan.HasConflicts()
}

// ConflictError returns a CONFLICT error summarizing the plan's conflicts,
// or nil when there are none
func (r *Result) ConflictError() error {
	if !r.HasConflicts() {
		return nil
	}
	n := len(r.Plan.Conflicts)
	noun := "conflicts"
	if n == 1 {
		noun = "conflict"
	}
	return errors.Newf(errors.ErrConflict, "%s %s: %d %s left untouched", r.Command, r.Package, n, noun).
		WithDetail("package", r.Package).
		WithDetail("path", r.Plan.Conflicts[0].Path)
}
