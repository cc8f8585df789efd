package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"bulkrenamer/internal/logging"
	"bulkrenamer/internal/ui"
)

func main() {
	if err := logging.Init("info"); err != nil {
		fmt.Fprintln(os.Stderr, "logging init:", err)
		os.Exit(1)
	}
	defer func() { _ = logging.Sync() }()

	a := app.NewWithID("com.bulkrenamer.app")
	w := a.NewWindow("Bulk File Renamer")
	w.Resize(fyne.NewSize(1040, 680))

	w.SetContent(ui.Build(w))
	w.ShowAndRun()
}
