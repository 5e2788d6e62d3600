// Package rootcmd wires the root cobra.Command for the openpages
// binary. Running with no subcommand starts the interactive text menu.
package rootcmd

import (
	"os"

	"github.com/spf13/cobra"

	addcmd "openpages/cmd/openpages/add"
	deletecmd "openpages/cmd/openpages/delete"
	guicmd "openpages/cmd/openpages/gui"
	listcmd "openpages/cmd/openpages/list"
	"openpages/cmd/openpages/shared"
	statuscmd "openpages/cmd/openpages/status"
	"openpages/internal/buildinfo"
	"openpages/internal/menu"
)

// New creates and returns the root cobra.Command.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "openpages",
		Short:         "Open Pages — personal research-paper tracker",
		Long:          "Open Pages tracks research papers in a JSON library.\nRun with no arguments for the interactive text menu, or use `openpages gui` for the desktop window.",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, _, log, err := ctx.Open()
			if err != nil {
				return err
			}
			return menu.New(st, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run()
		},
	}

	root.PersistentFlags().StringVar(
		&ctx.Library, "library", "",
		"Override the library file (default: config file → ./papers.json)",
	)
	root.PersistentFlags().StringVar(
		&ctx.ConfigPath, "config", "",
		"Config file path (default: ~/.config/openpages/config.yaml)",
	)
	root.PersistentFlags().StringVar(
		&ctx.LogLevel, "log-level", "",
		"Log level: debug, info, warn, error",
	)

	root.SetIn(os.Stdin)

	root.AddCommand(
		guicmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		addcmd.New(ctx).Cmd(),
		statuscmd.New(ctx).Cmd(),
		deletecmd.New(ctx).Cmd(),
	)

	return root
}
