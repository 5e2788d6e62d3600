package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"openpages/internal/buildinfo"
)

func (a *App) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reload Library", func() {
			if err := a.store.Reload(); err != nil {
				a.showError("Reload Error", err)
				return
			}
			a.refresh()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.fyneApp.Quit()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			about := fmt.Sprintf("%s %s\n\nLibrary: %s", appName, buildinfo.Version, a.store.Path())
			dialog.ShowInformation("About", about, a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}
