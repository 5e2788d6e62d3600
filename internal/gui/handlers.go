package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"openpages/internal/paper"
	"openpages/internal/store"
)

func (a *App) handleAdd() {
	title := widget.NewEntry()
	title.SetPlaceHolder("Paper title")
	status := widget.NewSelectEntry([]string{
		paper.StatusWorking, paper.StatusIdea, paper.StatusCompleted,
	})
	status.SetText(paper.StatusWorking)
	tags := widget.NewEntry()
	tags.SetPlaceHolder("comma-separated")
	summary := widget.NewMultiLineEntry()
	abstract := widget.NewMultiLineEntry()
	toc := widget.NewEntry()
	toc.SetPlaceHolder("comma-separated")
	github := widget.NewEntry()
	pdf := widget.NewEntry()
	purchase := widget.NewEntry()

	items := []*widget.FormItem{
		widget.NewFormItem("Title", title),
		widget.NewFormItem("Status", status),
		widget.NewFormItem("Tags", tags),
		widget.NewFormItem("Summary", summary),
		widget.NewFormItem("Abstract", abstract),
		widget.NewFormItem("Table of Contents", toc),
		widget.NewFormItem("GitHub URL", github),
		widget.NewFormItem("PDF URL", pdf),
		widget.NewFormItem("Purchase URL", purchase),
	}

	form := dialog.NewForm("Add Paper", "Add", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		if title.Text == "" {
			dialog.ShowInformation("Add Paper", "A title is required.", a.window)
			return
		}
		_, err := a.store.Add(store.Draft{
			Title:    title.Text,
			Status:   status.Text,
			Tags:     tags.Text,
			Summary:  summary.Text,
			Abstract: abstract.Text,
			TOC:      toc.Text,
			GitHub:   github.Text,
			PDF:      pdf.Text,
			Purchase: purchase.Text,
		})
		if err != nil {
			a.showError("Add Paper Error", err)
			return
		}
		a.refresh()
	}, a.window)

	form.Resize(fyne.NewSize(520, 0))
	form.Show()
}

func (a *App) handleUpdateStatus() {
	pos, p, ok := a.requireSelection()
	if !ok {
		return
	}

	status := widget.NewSelectEntry([]string{
		paper.StatusWorking, paper.StatusIdea, paper.StatusCompleted,
	})
	status.SetText(p.Status)

	items := []*widget.FormItem{
		widget.NewFormItem("New status", status),
	}

	dialog.ShowForm("Update Status", "Update", "Cancel", items, func(confirmed bool) {
		if !confirmed || status.Text == "" {
			return
		}
		if err := a.store.UpdateStatus(pos, status.Text); err != nil {
			a.showError("Update Status Error", err)
			return
		}
		a.refresh()
	}, a.window)
}

func (a *App) handleDelete() {
	pos, p, ok := a.requireSelection()
	if !ok {
		return
	}

	message := fmt.Sprintf("Delete paper '%s'?", p.Title)
	dialog.ShowConfirm("Confirm Delete", message, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := a.store.Delete(pos); err != nil {
			a.showError("Delete Paper Error", err)
			return
		}
		a.refresh()
	}, a.window)
}

// requireSelection resolves the selected table row into a store
// position, nagging the user when nothing is selected.
func (a *App) requireSelection() (int, paper.Paper, bool) {
	if a.selected < 0 {
		dialog.ShowInformation("Select Paper", "Please select a paper first.", a.window)
		return 0, paper.Paper{}, false
	}
	p, err := a.store.Get(a.selected)
	if err != nil {
		dialog.ShowInformation("Select Paper", "Please select a paper first.", a.window)
		return 0, paper.Paper{}, false
	}
	return a.selected, p, true
}

func (a *App) showError(title string, err error) {
	a.log.Error("gui", err, map[string]interface{}{"dialog": title})
	dialog.ShowError(err, a.window)
}
