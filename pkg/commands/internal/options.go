package internal

import (
	"context"

	"github.com/arthur-debert/stau/pkg/config"
	"github.com/arthur-debert/stau/pkg/types"
)

// ScriptRunner runs a package script on behalf of a command. Commands never
// spawn processes themselves.
type ScriptRunner interface {
	Run(ctx context.Context, hook types.ScriptHook) error
}

// CommonOptions are shared by every command
type CommonOptions struct {
	// DotfilesDir and TargetDir take precedence over config and environment
	DotfilesDir string
	TargetDir   string

	DryRun bool
	Force  bool

	// Config is loaded from the usual layers when nil
	Config *config.Config

	// FS defaults to the OS filesystem
	FS types.FS

	// Scripts runs setup and teardown hooks; nil disables hooks
	Scripts ScriptRunner
}
