// Package guicmd implements the `openpages gui` command.
package guicmd

import (
	"github.com/spf13/cobra"

	"openpages/cmd/openpages/shared"
	"openpages/internal/gui"
)

// Command implements `openpages gui`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the gui command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(*cobra.Command, []string) error {
	st, cfg, log, err := c.ctx.Open()
	if err != nil {
		return err
	}
	gui.New(st, cfg, log).Run()
	return nil
}
