// Package list reports every package of the dotfiles directory with its
// installation state.
package list

import (
	"github.com/arthur-debert/stau/pkg/commands/internal"
	"github.com/arthur-debert/stau/pkg/packs"
	"github.com/arthur-debert/stau/pkg/types"
)

// Options holds options for the list command
type Options struct {
	internal.CommonOptions
}

// List returns the packages in name order with their state and the number
// of broken links pointing into each
func List(opts Options) (*internal.Result, error) {
	s, err := internal.NewSession(types.CommandList, opts.CommonOptions)
	if err != nil {
		return nil, err
	}

	pkgs, err := packs.ListPackages(s.FS, s.Paths.DotfilesDir())
	if err != nil {
		return nil, err
	}

	st, err := s.Reporter().List(pkgs)
	if err != nil {
		return nil, err
	}

	logger := s.Logger()
	logger.Debug().Int("packages", len(st)).Msg("Listed packages")
	return &internal.Result{Command: types.CommandList, Status: st}, nil
}
