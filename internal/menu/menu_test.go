package menu_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"openpages/internal/logger"
	"openpages/internal/menu"
	"openpages/internal/store"
)

func newStore(c *qt.C) *store.Store {
	path := filepath.Join(c.TB.TempDir(), "papers.json")
	st, err := store.Open(path, logger.Nop())
	c.Assert(err, qt.IsNil)
	return st
}

// runMenu drives the menu with scripted input lines and returns
// everything it printed.
func runMenu(c *qt.C, st *store.Store, lines ...string) string {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	err := menu.New(st, in, &out, logger.Nop()).Run()
	c.Assert(err, qt.IsNil)
	return out.String()
}

func addPaper(c *qt.C, st *store.Store, title, status, tags string) {
	_, err := st.Add(store.Draft{Title: title, Status: status, Tags: tags})
	c.Assert(err, qt.IsNil)
}

func TestRun_ListPapers(t *testing.T) {
	c := qt.New(t)

	c.Run("empty collection", func(c *qt.C) {
		st := newStore(c)
		out := runMenu(c, st, "1", "5")
		c.Assert(out, qt.Contains, "No papers tracked yet.")
	})

	c.Run("numbered one-based with status", func(c *qt.C) {
		st := newStore(c)
		addPaper(c, st, "Paper A", "idea", "")
		addPaper(c, st, "Paper B", "working", "")
		out := runMenu(c, st, "1", "5")
		c.Assert(out, qt.Contains, "1. Paper A [idea]")
		c.Assert(out, qt.Contains, "2. Paper B [working]")
	})
}

func TestRun_AddPaper(t *testing.T) {
	c := qt.New(t)
	st := newStore(c)

	out := runMenu(c, st,
		"2",
		"Attention Is All You Need", // title
		"Completed",                 // status
		"ml, nlp",                   // tags
		"The transformer paper.",    // summary
		"We propose a new simple network architecture.", // abstract
		"Introduction, Model", // toc
		"https://github.com/tensorflow/tensor2tensor", // github
		"https://arxiv.org/pdf/1706.03762",            // pdf
		"", // purchase
		"5",
	)

	c.Assert(out, qt.Contains, "Paper added!")
	c.Assert(st.Len(), qt.Equals, 1)
	p, err := st.Get(0)
	c.Assert(err, qt.IsNil)
	c.Assert(p.Status, qt.Equals, "completed")
	c.Assert(p.Tags, qt.DeepEquals, []string{"ml", "nlp"})
	c.Assert(p.TOC, qt.DeepEquals, []string{"Introduction", "Model"})
}

func TestRun_UpdateStatus(t *testing.T) {
	c := qt.New(t)

	c.Run("valid selection updates and lower-cases", func(c *qt.C) {
		st := newStore(c)
		addPaper(c, st, "Paper A", "idea", "")

		out := runMenu(c, st, "3", "1", "Completed", "5")
		c.Assert(out, qt.Contains, "Status updated!")

		p, err := st.Get(0)
		c.Assert(err, qt.IsNil)
		c.Assert(p.Status, qt.Equals, "completed")
	})

	c.Run("out-of-range selection leaves everything unchanged", func(c *qt.C) {
		st := newStore(c)
		addPaper(c, st, "Paper A", "idea", "")

		out := runMenu(c, st, "3", "7", "5")
		c.Assert(out, qt.Contains, "Invalid selection.")

		p, err := st.Get(0)
		c.Assert(err, qt.IsNil)
		c.Assert(p.Status, qt.Equals, "idea")
	})

	c.Run("non-numeric selection is rejected", func(c *qt.C) {
		st := newStore(c)
		addPaper(c, st, "Paper A", "idea", "")

		out := runMenu(c, st, "3", "first", "5")
		c.Assert(out, qt.Contains, "Invalid selection.")
	})
}

func TestRun_DeletePaper(t *testing.T) {
	c := qt.New(t)

	c.Run("confirmed delete removes the paper", func(c *qt.C) {
		st := newStore(c)
		addPaper(c, st, "Paper A", "idea", "")
		addPaper(c, st, "Paper B", "working", "")

		out := runMenu(c, st, "4", "1", "y", "5")
		c.Assert(out, qt.Contains, "Delete paper 'Paper A'? (y/n):")
		c.Assert(out, qt.Contains, "Paper deleted!")
		c.Assert(st.Len(), qt.Equals, 1)

		p, err := st.Get(0)
		c.Assert(err, qt.IsNil)
		c.Assert(p.Title, qt.Equals, "Paper B")
	})

	c.Run("declined delete changes nothing", func(c *qt.C) {
		st := newStore(c)
		addPaper(c, st, "Paper A", "idea", "")

		out := runMenu(c, st, "4", "1", "n", "5")
		c.Assert(out, qt.Contains, "Delete cancelled.")
		c.Assert(st.Len(), qt.Equals, 1)
	})
}

func TestRun_InvalidOption(t *testing.T) {
	c := qt.New(t)
	st := newStore(c)
	out := runMenu(c, st, "9", "5")
	c.Assert(out, qt.Contains, "Invalid option!")
}

func TestRun_EndOfInputExitsCleanly(t *testing.T) {
	c := qt.New(t)
	st := newStore(c)

	var out bytes.Buffer
	err := menu.New(st, strings.NewReader(""), &out, logger.Nop()).Run()
	c.Assert(err, qt.IsNil)
}
