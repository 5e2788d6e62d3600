// Package deletecmd implements the `openpages delete` command.
package deletecmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"openpages/cmd/openpages/shared"
)

// Command implements `openpages delete`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the delete command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "delete <paper-number>",
		Short: "Delete a paper by its list number",
		Args:  cobra.ExactArgs(1),
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

	p, err := st.Get(n - 1)
	if err != nil {
		return err
	}
	if err := st.Delete(n - 1); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", p.Title)
	return nil
}
