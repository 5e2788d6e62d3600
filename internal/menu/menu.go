// Package menu implements the interactive text front end: a numbered
// menu reading free-text answers from an input stream and printing
// results to an output stream.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"openpages/internal/logger"
	"openpages/internal/store"
)

// Menu drives the paper store from a scripted or interactive stream.
// Papers are displayed and selected with 1-based numbers and converted
// to the store's zero-based positions internally.
type Menu struct {
	store *store.Store
	in    *bufio.Scanner
	out   io.Writer
	log   logger.Logger
}

// New builds a menu over the given streams. Production wires stdin and
// stdout; tests wire buffers.
func New(st *store.Store, in io.Reader, out io.Writer, log logger.Logger) *Menu {
	return &Menu{
		store: st,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
	}
}

// Run loops over the menu until the user exits or input runs out.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Open Pages Paper Manager ---")
		fmt.Fprintln(m.out, "1. List papers")
		fmt.Fprintln(m.out, "2. Add new paper")
		fmt.Fprintln(m.out, "3. Update paper status")
		fmt.Fprintln(m.out, "4. Delete paper")
		fmt.Fprintln(m.out, "5. Exit")

		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.listPapers()
		case "2":
			m.addPaper()
		case "3":
			m.updateStatus()
		case "4":
			m.deletePaper()
		case "5":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option!")
		}
	}
}

// prompt prints a label and reads one trimmed line. ok is false when
// input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) listPapers() {
	if m.store.Len() == 0 {
		fmt.Fprintln(m.out, "No papers tracked yet.")
		return
	}
	for i, p := range m.store.List() {
		fmt.Fprintf(m.out, "%d. %s [%s]\n", i+1, p.Title, p.Status)
	}
}

func (m *Menu) addPaper() {
	var d store.Draft
	var ok bool

	if d.Title, ok = m.prompt("Paper Title: "); !ok {
		return
	}
	if d.Status, ok = m.prompt("Status (working/idea/completed): "); !ok {
		return
	}
	if d.Tags, ok = m.prompt("Tags (comma-separated): "); !ok {
		return
	}
	if d.Summary, ok = m.prompt("Short summary: "); !ok {
		return
	}
	if d.Abstract, ok = m.prompt("Full abstract: "); !ok {
		return
	}
	if d.TOC, ok = m.prompt("Table of Contents (comma-separated): "); !ok {
		return
	}
	if d.GitHub, ok = m.prompt("GitHub URL: "); !ok {
		return
	}
	if d.PDF, ok = m.prompt("PDF URL: "); !ok {
		return
	}
	if d.Purchase, ok = m.prompt("Purchase URL: "); !ok {
		return
	}

	if _, err := m.store.Add(d); err != nil {
		m.log.Error("menu", err, nil)
		fmt.Fprintln(m.out, "Could not save the paper:", err)
		return
	}
	fmt.Fprintln(m.out, "Paper added!")
}

// selectPaper lists the collection and reads a 1-based selection,
// returning the zero-based position. ok is false for invalid input or
// exhausted streams; the caller reports nothing further in that case.
func (m *Menu) selectPaper(label string) (int, bool) {
	m.listPapers()
	if m.store.Len() == 0 {
		return 0, false
	}

	choice, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > m.store.Len() {
		fmt.Fprintln(m.out, "Invalid selection.")
		return 0, false
	}
	return n - 1, true
}

func (m *Menu) updateStatus() {
	pos, ok := m.selectPaper("Select paper number to update status: ")
	if !ok {
		return
	}

	status, ok := m.prompt("New status (working/idea/completed): ")
	if !ok {
		return
	}

	if err := m.store.UpdateStatus(pos, status); err != nil {
		m.log.Error("menu", err, map[string]interface{}{"position": pos})
		fmt.Fprintln(m.out, "Invalid selection.")
		return
	}
	fmt.Fprintln(m.out, "Status updated!")
}

func (m *Menu) deletePaper() {
	pos, ok := m.selectPaper("Select paper number to delete: ")
	if !ok {
		return
	}

	p, err := m.store.Get(pos)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid selection.")
		return
	}

	answer, ok := m.prompt(fmt.Sprintf("Delete paper '%s'? (y/n): ", p.Title))
	if !ok || !strings.EqualFold(answer, "y") {
		fmt.Fprintln(m.out, "Delete cancelled.")
		return
	}

	if err := m.store.Delete(pos); err != nil {
		m.log.Error("menu", err, map[string]interface{}{"position": pos})
		fmt.Fprintln(m.out, "Invalid selection.")
		return
	}
	fmt.Fprintln(m.out, "Paper deleted!")
}
