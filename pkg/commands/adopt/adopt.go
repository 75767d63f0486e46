// Package adopt moves existing files from the target directory into a
// package and links them back.
package adopt

import (
	"strings"

	"github.com/arthur-debert/stau/pkg/commands/internal"
	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/types"
)

// Options holds options for the adopt command
type Options struct {
	internal.CommonOptions

	Package string
	Files   []string
}

// Adopt copies each file into the package and replaces it with a link. The
// package directory is created when it does not exist yet.
func Adopt(opts Options) (*internal.Result, error) {
	s, err := internal.NewSession(types.CommandAdopt, opts.CommonOptions)
	if err != nil {
		return nil, err
	}
	logger := s.Logger()

	if len(opts.Files) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "adopt needs at least one file")
	}

	// Trailing slashes come from shell completion
	name := strings.TrimRight(opts.Package, "/")
	pkg, err := s.LoadPackage(name)
	if errors.IsErrorCode(err, errors.ErrPackageNotFound) {
		if verr := paths.ValidatePackageName(name); verr != nil {
			return nil, verr
		}
		pkg = types.Package{Name: name, Path: s.Paths.PackagePath(name)}
		logger.Info().Str("package", name).Msg("Package does not exist yet, it will be created")
	} else if err != nil {
		return nil, err
	}

	plan, err := s.Planner(s.Config.Uninstall.CopyBack, false).Adopt(pkg, opts.Files)
	if err != nil {
		return nil, err
	}

	result, err := s.Apply(plan)
	if err != nil {
		return result, err
	}

	logger.Info().
		Str("package", pkg.Name).
		Strs("files", opts.Files).
		Int("actions", len(plan.Actions)).
		Bool("dry_run", result.DryRun).
		Msg("Adopt completed")
	return result, nil
}
