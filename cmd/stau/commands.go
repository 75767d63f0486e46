package stau

import (
	"fmt"

	"github.com/arthur-debert/stau/internal/version"
	"github.com/arthur-debert/stau/pkg/commands"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/spf13/cobra"
)

func newInstallCmd(flags *globalFlags) *cobra.Command {
	var noSetup bool

	cmd := &cobra.Command{
		Use:               "install <package>",
		Short:             MsgInstallShort,
		Long:              MsgInstallLong,
		Example:           MsgInstallExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: packageNamesCompletion(flags, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.install")
			logger.Info().
				Str("package", args[0]).
				Bool("dry_run", flags.dryRun).
				Bool("force", flags.force).
				Msg("Installing package")

			result, err := commands.Install(cmd.Context(), commands.InstallOptions{
				CommonOptions: flags.common(cmd),
				Package:       args[0],
				NoSetup:       noSetup,
			})
			return finish(cmd, flags, result, err)
		},
	}
	cmd.Flags().BoolVar(&noSetup, "no-setup", false, MsgFlagNoSetup)
	return cmd
}

func newUninstallCmd(flags *globalFlags) *cobra.Command {
	var noTeardown, noCopyBack, prune bool

	cmd := &cobra.Command{
		Use:               "uninstall <package>",
		Short:             MsgUninstallShort,
		Long:              MsgUninstallLong,
		Example:           MsgUninstallExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: packageNamesCompletion(flags, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.uninstall")
			logger.Info().
				Str("package", args[0]).
				Bool("dry_run", flags.dryRun).
				Bool("copy_back", !noCopyBack).
				Msg("Uninstalling package")

			result, err := commands.Uninstall(cmd.Context(), commands.UninstallOptions{
				CommonOptions: flags.common(cmd),
				Package:       args[0],
				NoTeardown:    noTeardown,
				NoCopyBack:    noCopyBack,
				Prune:         prune,
			})
			return finish(cmd, flags, result, err)
		},
	}
	cmd.Flags().BoolVar(&noTeardown, "no-teardown", false, MsgFlagNoTeardown)
	cmd.Flags().BoolVar(&noCopyBack, "no-copy-back", false, MsgFlagNoCopyBack)
	cmd.Flags().BoolVar(&prune, "prune", false, MsgFlagPrune)
	return cmd
}

func newRestowCmd(flags *globalFlags) *cobra.Command {
	var runSetup bool

	cmd := &cobra.Command{
		Use:               "restow <package>",
		Short:             MsgRestowShort,
		Long:              MsgRestowLong,
		Example:           MsgRestowExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: packageNamesCompletion(flags, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Restow(cmd.Context(), commands.RestowOptions{
				CommonOptions: flags.common(cmd),
				Package:       args[0],
				RunSetup:      runSetup,
			})
			return finish(cmd, flags, result, err)
		},
	}
	cmd.Flags().BoolVar(&runSetup, "run-setup", false, MsgFlagRunSetup)
	return cmd
}

func newAdoptCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "adopt <package> <file>...",
		Short:   MsgAdoptShort,
		Long:    MsgAdoptLong,
		Example: MsgAdoptExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return packageNamesCompletion(flags, false)(cmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Adopt(commands.AdoptOptions{
				CommonOptions: flags.common(cmd),
				Package:       args[0],
				Files:         args[1:],
			})
			return finish(cmd, flags, result, err)
		},
	}
}

func newListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.List(commands.ListOptions{CommonOptions: flags.common(cmd)})
			return finish(cmd, flags, result, err)
		},
	}
}

func newStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "status [package...]",
		Short:             MsgStatusShort,
		Long:              MsgStatusLong,
		GroupID:           "info",
		ValidArgsFunction: packageNamesCompletion(flags, true),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Status(commands.StatusOptions{
				CommonOptions: flags.common(cmd),
				Packages:      args,
			})
			return finish(cmd, flags, result, err)
		},
	}
}

func newCleanCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "clean [package...]",
		Short:             MsgCleanShort,
		Long:              MsgCleanLong,
		GroupID:           "core",
		ValidArgsFunction: packageNamesCompletion(flags, true),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Clean(commands.CleanOptions{
				CommonOptions: flags.common(cmd),
				Packages:      args,
			})
			return finish(cmd, flags, result, err)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// finish renders a command's result, if any, and returns the error the
// process should exit with
func finish(cmd *cobra.Command, flags *globalFlags, result *commands.Result, err error) error {
	if result != nil {
		if rerr := flags.render(cmd, result); rerr != nil && err == nil {
			err = rerr
		}
	}
	return err
}
