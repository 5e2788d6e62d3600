// Package listcmd implements the `openpages list` command.
package listcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"openpages/cmd/openpages/shared"
)

// Command implements `openpages list`.
type Command struct {
	ctx  *shared.Context
	cmd  *cobra.Command
	tags bool
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "list",
		Short: "List tracked papers",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().BoolVar(&c.tags, "tags", false, "Also print each paper's tags")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	st, _, _, err := c.ctx.Open()
	if err != nil {
		return err
	}

	if st.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No papers tracked yet.")
		return nil
	}
	for i, p := range st.List() {
		if c.tags && len(p.Tags) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s [%s] (%s)\n", i+1, p.Title, p.Status, p.TagsLine())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s [%s]\n", i+1, p.Title, p.Status)
		}
	}
	return nil
}
