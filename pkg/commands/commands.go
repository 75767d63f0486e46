// Package commands provides the command implementations behind the CLI.
//
// Each command is implemented in its own subdirectory:
//   - install/   - link a package into the target
//   - uninstall/ - remove a package's links, copying files back
//   - restow/    - drop stale links and link what is missing
//   - adopt/     - move target files into a package
//   - list/      - list packages with their state
//   - status/    - per-entry status of packages
//   - clean/     - remove broken links into packages
//   - internal/  - session, result and hook plumbing shared by all of them
//
// This file re-exports the command functions and their option types.
package commands

import (
	"context"

	"github.com/arthur-debert/stau/pkg/commands/adopt"
	"github.com/arthur-debert/stau/pkg/commands/clean"
	"github.com/arthur-debert/stau/pkg/commands/install"
	"github.com/arthur-debert/stau/pkg/commands/internal"
	"github.com/arthur-debert/stau/pkg/commands/list"
	"github.com/arthur-debert/stau/pkg/commands/restow"
	"github.com/arthur-debert/stau/pkg/commands/status"
	"github.com/arthur-debert/stau/pkg/commands/uninstall"
	"github.com/arthur-debert/stau/pkg/types"
)

// Shared types
type (
	CommonOptions = internal.CommonOptions
	Result        = internal.Result
	ScriptRunner  = internal.ScriptRunner
)

// ValidateFlags rejects flag combinations a command does not accept
func ValidateFlags(cmd types.Command, dryRun, force bool) error {
	return internal.ValidateFlags(cmd, dryRun, force)
}

type InstallOptions = install.Options

func Install(ctx context.Context, opts InstallOptions) (*Result, error) {
	return install.Install(ctx, opts)
}

type UninstallOptions = uninstall.Options

func Uninstall(ctx context.Context, opts UninstallOptions) (*Result, error) {
	return uninstall.Uninstall(ctx, opts)
}

type RestowOptions = restow.Options

func Restow(ctx context.Context, opts RestowOptions) (*Result, error) {
	return restow.Restow(ctx, opts)
}

type AdoptOptions = adopt.Options

func Adopt(opts AdoptOptions) (*Result, error) {
	return adopt.Adopt(opts)
}

type ListOptions = list.Options

func List(opts ListOptions) (*Result, error) {
	return list.List(opts)
}

type StatusOptions = status.Options

func Status(opts StatusOptions) (*Result, error) {
	return status.Status(opts)
}

type CleanOptions = clean.Options

func Clean(opts CleanOptions) (*Result, error) {
	return clean.Clean(opts)
}
