package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/stau/cmd/stau"
	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := stau.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		r, rerr := ui.NewRenderer(stau.FormatFlag(rootCmd), os.Stderr)
		if rerr != nil || r.RenderError(err) != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(errors.ExitCode(err))
	}
}
