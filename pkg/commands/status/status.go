// Package status reports per-entry installation status of packages.
package status

import (
	"github.com/arthur-debert/stau/pkg/commands/internal"
	"github.com/arthur-debert/stau/pkg/packs"
	"github.com/arthur-debert/stau/pkg/types"
)

// Options holds options for the status command
type Options struct {
	internal.CommonOptions

	// Packages to report on; all packages when empty
	Packages []string
}

// Status classifies every entry of the requested packages. It never writes.
func Status(opts Options) (*internal.Result, error) {
	s, err := internal.NewSession(types.CommandStatus, opts.CommonOptions)
	if err != nil {
		return nil, err
	}

	var pkgs []types.Package
	if len(opts.Packages) == 0 {
		pkgs, err = packs.ListPackages(s.FS, s.Paths.DotfilesDir())
		if err != nil {
			return nil, err
		}
	}
	for _, name := range opts.Packages {
		pkg, err := s.LoadPackage(name)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}

	reporter := s.Reporter()
	result := &internal.Result{Command: types.CommandStatus}
	for _, pkg := range pkgs {
		st, err := reporter.Status(pkg)
		if err != nil {
			return nil, err
		}
		result.Status = append(result.Status, st)
	}
	return result, nil
}
