// Package gui implements the desktop front end: a window with a table
// of tracked papers and buttons for the mutating operations. The
// actual logic is split across:
// - app.go: application structure, table and toolbar construction
// - handlers.go: event handlers for the add/update/delete buttons
// - menus.go: main menu setup
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"openpages/internal/config"
	"openpages/internal/logger"
	"openpages/internal/store"
)

const (
	appName = "Open Pages"
	appID   = "io.openpages.tracker"
)

var columns = []string{"Title", "Status", "Tags"}

// App owns the Fyne application, the window, and the paper store the
// window operates on.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	store   *store.Store
	log     logger.Logger

	table    *widget.Table
	selected int
}

// New builds the window over an already-opened store.
func New(st *store.Store, cfg *config.Config, log logger.Logger) *App {
	fyneApp := app.NewWithID(appID)

	window := fyneApp.NewWindow(appName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	a := &App{
		fyneApp:  fyneApp,
		window:   window,
		store:    st,
		log:      log,
		selected: -1,
	}

	a.buildTable()
	a.setupMenus()

	toolbar := container.NewHBox(
		widget.NewButtonWithIcon("Add Paper", theme.ContentAddIcon(), a.handleAdd),
		widget.NewButtonWithIcon("Update Status", theme.DocumentCreateIcon(), a.handleUpdateStatus),
		widget.NewButtonWithIcon("Delete Paper", theme.DeleteIcon(), a.handleDelete),
	)

	window.SetContent(container.NewBorder(nil, container.NewCenter(toolbar), nil, nil, a.table))
	window.SetCloseIntercept(func() {
		a.log.Info("gui", "window closed", nil)
		a.window.Close()
	})

	return a
}

// Run shows the window and blocks until it closes.
func (a *App) Run() {
	a.log.Info("gui", "window opened", map[string]interface{}{
		"papers": a.store.Len(),
	})
	a.window.ShowAndRun()
}

func (a *App) buildTable() {
	a.table = widget.NewTable(
		func() (int, int) {
			return a.store.Len(), len(columns)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			p, err := a.store.Get(id.Row)
			if err != nil {
				label.SetText("")
				return
			}
			switch id.Col {
			case 0:
				label.SetText(p.Title)
			case 1:
				label.SetText(p.Status)
			case 2:
				label.SetText(p.TagsLine())
			}
		},
	)

	a.table.ShowHeaderRow = true
	a.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabel("")
	}
	a.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		label := o.(*widget.Label)
		if id.Col >= 0 && id.Col < len(columns) {
			label.SetText(columns[id.Col])
		}
	}

	a.table.SetColumnWidth(0, 360)
	a.table.SetColumnWidth(1, 120)
	a.table.SetColumnWidth(2, 240)

	a.table.OnSelected = func(id widget.TableCellID) {
		a.selected = id.Row
	}
	a.table.OnUnselected = func(widget.TableCellID) {
		a.selected = -1
	}
}

// refresh redraws the table and drops the selection, since positions
// may have shifted.
func (a *App) refresh() {
	a.selected = -1
	a.table.UnselectAll()
	a.table.Refresh()
}
