package scripts

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultShell interprets package scripts
const DefaultShell = "/bin/sh"

// Runner executes script hooks
type Runner struct {
	Shell   string
	Stdout  io.Writer
	Stderr  io.Writer
	Timeout time.Duration

	logger zerolog.Logger
}

// NewRunner creates a runner streaming to the process's stdout and stderr
func NewRunner() *Runner {
	return &Runner{
		Shell:  DefaultShell,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logging.GetLogger("scripts"),
	}
}

// Run executes hook.Script and waits for it. A non-zero exit, a failure to
// start or a cancelled context is a SCRIPT_FAILED error.
func (r *Runner) Run(ctx context.Context, hook types.ScriptHook) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	shell := r.Shell
	if shell == "" {
		shell = DefaultShell
	}

	cmd := exec.CommandContext(ctx, shell, hook.Script)
	cmd.Dir = hook.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	// Start with current environment
	cmd.Env = os.Environ()
	keys := make([]string, 0, len(hook.Env))
	for k := range hook.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, hook.Env[k]))
	}

	r.logger.Info().
		Str("package", hook.Package).
		Str("kind", string(hook.Kind)).
		Str("script", hook.Script).
		Msg("Running package script")

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		r.logger.Error().Err(err).Str("script", hook.Script).Msg("Package script failed")
		return errors.Wrapf(err, errors.ErrScriptFailed, "%s script of %s failed", hook.Kind, hook.Package).
			WithDetail("path", hook.Script).
			WithDetail("package", hook.Package)
	}

	r.logger.Debug().
		Str("script", hook.Script).
		Dur("duration", time.Since(start)).
		Msg("Package script finished")
	return nil
}
