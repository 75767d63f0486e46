package stau

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/stau/internal/version"
	"github.com/arthur-debert/stau/pkg/commands"
	"github.com/arthur-debert/stau/pkg/filesystem"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/packs"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/arthur-debert/stau/pkg/scripts"
	"github.com/arthur-debert/stau/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity int
	dryRun    bool
	force     bool
	dir       string
	target    string
	format    string
}

// common turns the global flags into command options
func (g *globalFlags) common(cmd *cobra.Command) commands.CommonOptions {
	runner := scripts.NewRunner()
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()
	if f, err := ui.ParseFormat(g.format); err == nil && f.IsMachine() {
		runner.Stdout = cmd.ErrOrStderr()
	}

	return commands.CommonOptions{
		DotfilesDir: g.dir,
		TargetDir:   g.target,
		DryRun:      g.dryRun,
		Force:       g.force,
		Scripts:     runner,
	}
}

// renderer builds the output renderer for w
func (g *globalFlags) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

// render writes result to the command's output and turns unresolved
// conflicts into the command's error
func (g *globalFlags) render(cmd *cobra.Command, result *commands.Result) error {
	r, err := g.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := r.RenderResult(result); err != nil {
		return err
	}
	return result.ConflictError()
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "stau",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: flags.verbosity,
				Console:   cmd.ErrOrStderr(),
				NoColor:   os.Getenv("NO_COLOR") != "",
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVarP(&flags.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	pf.BoolVarP(&flags.force, "force", "f", false, MsgFlagForce)
	pf.StringVarP(&flags.dir, "dir", "d", "", MsgFlagDir)
	pf.StringVarP(&flags.target, "target", "t", "", MsgFlagTarget)
	pf.StringVarP(&flags.format, "format", "o", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "info", Title: "INFORMATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd(flags))
	rootCmd.AddCommand(newUninstallCmd(flags))
	rootCmd.AddCommand(newRestowCmd(flags))
	rootCmd.AddCommand(newAdoptCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newCleanCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// FormatFlag returns the value of the --format flag of root
func FormatFlag(root *cobra.Command) ui.Format {
	value, _ := root.PersistentFlags().GetString("format")
	f, err := ui.ParseFormat(value)
	if err != nil {
		return ui.FormatAuto
	}
	return f
}

// packageNamesCompletion completes package names, skipping ones already given
func packageNamesCompletion(flags *globalFlags, multiple bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if !multiple && len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		p, err := paths.New(paths.Options{DotfilesDir: flags.dir, TargetDir: flags.target})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		pkgs, err := packs.ListPackages(filesystem.NewOS(), p.DotfilesDir())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		seen := make(map[string]bool, len(args))
		for _, a := range args {
			seen[a] = true
		}
		var names []string
		for _, pkg := range pkgs {
			if !seen[pkg.Name] {
				names = append(names, pkg.Name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
