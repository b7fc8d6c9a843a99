package ui

import (
	"TacBoard/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

func RunApp(cfg *config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	view := NewView(cfg, myWindow)

	myWindow.SetContent(view.Content())
	myWindow.ShowAndRun()
}
