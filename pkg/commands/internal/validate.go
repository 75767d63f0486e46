package internal

import (
	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/types"
)

// ValidateFlags rejects flag combinations a command does not accept. It runs
// before any directory is resolved or plan built.
func ValidateFlags(cmd types.Command, dryRun, force bool) error {
	var bad string
	switch cmd {
	case types.CommandAdopt, types.CommandClean:
		if force {
			bad = "--force"
		}
	case types.CommandUninstall:
		if dryRun && force {
			bad = "--dry-run with --force"
		}
	case types.CommandList, types.CommandStatus:
		switch {
		case force && dryRun:
			bad = "--force and --dry-run"
		case force:
			bad = "--force"
		case dryRun:
			bad = "--dry-run"
		}
	}
	if bad == "" {
		return nil
	}
	return errors.Newf(errors.ErrInvalidFlags, "%s does not accept %s", cmd, bad).
		WithDetail("command", string(cmd))
}
