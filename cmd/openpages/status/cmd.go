// Package statuscmd implements the `openpages status` command.
package statuscmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"openpages/cmd/openpages/shared"
)

// Command implements `openpages status`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the status command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "status <paper-number> <new-status>",
		Short: "Update the status of a paper by its list number",
		Args:  cobra.ExactArgs(2),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid paper number %q", args[0])
	}

	st, _, _, err := c.ctx.Open()
	if err != nil {
		return err
	}

	// Numbers shown by `list` are 1-based.
	if err := st.UpdateStatus(n-1, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Status updated!\n")
	return nil
}
