package status

import (
	"github.com/arthur-debert/stau/pkg/cleaner"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/packs"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/probe"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/rs/zerolog"
)

// Reporter computes package status
type Reporter struct {
	walker  *packs.Walker
	prober  *probe.Prober
	cleaner *cleaner.Cleaner
	paths   *paths.Paths
	logger  zerolog.Logger
}

// NewReporter creates a reporter. The cleaner is optional; without it List
// only counts broken links among current entries.
func NewReporter(walker *packs.Walker, prober *probe.Prober, c *cleaner.Cleaner, p *paths.Paths) *Reporter {
	return &Reporter{
		walker:  walker,
		prober:  prober,
		cleaner: c,
		paths:   p,
		logger:  logging.GetLogger("status"),
	}
}

// Status classifies every entry of pkg
func (r *Reporter) Status(pkg types.Package) (types.PackageStatus, error) {
	st := types.PackageStatus{Package: pkg.Name}

	for entry, err := range r.walker.Walk(pkg) {
		if err != nil {
			return st, err
		}
		current, err := r.prober.Classify(r.paths.TargetPath(entry), pkg)
		if err != nil {
			return st, err
		}

		cond := Condition(pkg, entry, current)
		switch cond {
		case types.EntryLinked:
			st.Linked++
		case types.EntryMissing:
			st.Missing++
		case types.EntryConflicted:
			st.Conflicted++
			if current.Broken {
				st.Broken++
			}
		}
		st.Entries = append(st.Entries, types.EntryStatus{
			Entry:     entry,
			Condition: cond,
			Current:   current,
		})
	}

	st.State = st.DeriveState()
	r.logger.Debug().
		Str("package", pkg.Name).
		Str("state", string(st.State)).
		Int("linked", st.Linked).
		Int("missing", st.Missing).
		Int("conflicted", st.Conflicted).
		Msg("Package status computed")
	return st, nil
}

// List summarizes packages without per-entry detail. Broken counts every
// broken link under the target that points into the package, including
// links to files that were deleted from it.
func (r *Reporter) List(pkgs []types.Package) ([]types.PackageStatus, error) {
	var broken map[string]int
	if r.cleaner != nil {
		links, err := r.cleaner.Scan()
		if err != nil {
			return nil, err
		}
		broken = make(map[string]int)
		for _, l := range links {
			broken[l.Package]++
		}
	}

	out := make([]types.PackageStatus, 0, len(pkgs))
	for _, pkg := range pkgs {
		st, err := r.Status(pkg)
		if err != nil {
			return nil, err
		}
		st.Entries = nil
		if broken != nil {
			st.Broken = broken[pkg.Name]
		}
		out = append(out, st)
	}
	return out, nil
}

// Condition decides whether entry of pkg is linked, missing or conflicted
// given the current state of its target path
func Condition(pkg types.Package, entry string, current types.TargetState) types.EntryCondition {
	switch current.Kind {
	case types.TargetAbsent:
		return types.EntryMissing
	case types.TargetManagedLink:
		if current.Entry == entry && !current.Broken {
			return types.EntryLinked
		}
	case types.TargetRegularFile:
		// reached through a linked parent directory
		if current.Package == pkg.Name && current.Entry == entry {
			return types.EntryLinked
		}
	}
	return types.EntryConflicted
}
