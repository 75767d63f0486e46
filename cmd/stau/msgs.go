package stau

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A symlink farm manager for dotfiles"
	MsgInstallShort    = "Link a package into the target directory"
	MsgUninstallShort  = "Remove a package's links, keeping copies of its files"
	MsgRestowShort     = "Refresh the links of a package"
	MsgAdoptShort      = "Move existing files into a package"
	MsgListShort       = "List packages with their installation state"
	MsgStatusShort     = "Show per-file status of packages"
	MsgCleanShort      = "Remove broken links into packages"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Preview changes without executing them"
	MsgFlagForce      = "Delete files that are in the way instead of reporting conflicts"
	MsgFlagDir        = "Dotfiles directory (default $STAU_DIR or ~/dotfiles)"
	MsgFlagTarget     = "Target directory (default $STAU_TARGET or $HOME)"
	MsgFlagFormat     = "Output format: auto, term, text, json or yaml"
	MsgFlagNoSetup    = "Do not run the package's setup.sh"
	MsgFlagNoTeardown = "Do not run the package's teardown.sh"
	MsgFlagNoCopyBack = "Delete links instead of replacing them with copies"
	MsgFlagPrune      = "Remove directories left empty, even ones that predate install"
	MsgFlagRunSetup   = "Run the package's setup.sh after relinking"

	// Version output
	MsgVersionFormat = "stau version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/uninstall-long.txt
	msgUninstallLongRaw string
	MsgUninstallLong    = strings.TrimSpace(msgUninstallLongRaw)

	//go:embed msgs/uninstall-example.txt
	msgUninstallExampleRaw string
	MsgUninstallExample    = strings.TrimRight(msgUninstallExampleRaw, "\n")

	//go:embed msgs/restow-long.txt
	msgRestowLongRaw string
	MsgRestowLong    = strings.TrimSpace(msgRestowLongRaw)

	//go:embed msgs/restow-example.txt
	msgRestowExampleRaw string
	MsgRestowExample    = strings.TrimRight(msgRestowExampleRaw, "\n")

	//go:embed msgs/adopt-long.txt
	msgAdoptLongRaw string
	MsgAdoptLong    = strings.TrimSpace(msgAdoptLongRaw)

	//go:embed msgs/adopt-example.txt
	msgAdoptExampleRaw string
	MsgAdoptExample    = strings.TrimRight(msgAdoptExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/clean-long.txt
	msgCleanLongRaw string
	MsgCleanLong    = strings.TrimSpace(msgCleanLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
