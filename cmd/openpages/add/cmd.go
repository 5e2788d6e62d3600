// Package addcmd implements the `openpages add` command.
package addcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"openpages/cmd/openpages/shared"
	"openpages/internal/paper"
	"openpages/internal/store"
)

// Command implements `openpages add`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	draft store.Draft
}

// New creates the add command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "add",
		Short: "Add a paper non-interactively",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.draft.Title, "title", "", "Paper title (required)")
	f.StringVar(&c.draft.Status, "status", paper.StatusWorking, "Status: working, idea, completed")
	f.StringVar(&c.draft.Tags, "tags", "", "Comma-separated tags")
	f.StringVar(&c.draft.Summary, "summary", "", "Short summary")
	f.StringVar(&c.draft.Abstract, "abstract", "", "Full abstract")
	f.StringVar(&c.draft.TOC, "toc", "", "Comma-separated table of contents")
	f.StringVar(&c.draft.GitHub, "github", "", "GitHub URL")
	f.StringVar(&c.draft.PDF, "pdf", "", "PDF URL")
	f.StringVar(&c.draft.Purchase, "purchase", "", "Purchase URL")
	_ = c.cmd.MarkFlagRequired("title")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	st, _, _, err := c.ctx.Open()
	if err != nil {
		return err
	}

	p, err := st.Add(c.draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %q [%s] as paper %d\n", p.Title, p.Status, st.Len())
	return nil
}
