package ui

import (
	"fmt"
	"log"

	"TacBoard/internal/export"
	"TacBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// scene captures what is on screen right now.
func (v *View) scene() export.Scene {
	sc := export.Scene{
		Title:   v.cfg.Export.Title,
		Map:     v.board.Background(),
		Drawing: v.surface.Snapshot(),
		Strokes: v.board.Strokes(),
	}
	if file := v.board.Background().File(); file != "" {
		sc.Background = export.LoadBackground(v.cfg.MapPath(file))
	}
	for _, m := range state.Markers() {
		sc.Pins = append(sc.Pins, export.Pin{Marker: m, Pos: v.board.Position(m)})
	}
	return sc
}

func (v *View) exportPDF() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		if writer == nil {
			return
		}
		v.SaveToFile(writer)
	}, v.window)
	d.SetFileName("board.pdf")
	d.Show()
}

// SaveToFile writes the PDF snapshot to writer and closes it.
func (v *View) SaveToFile(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()

	if err := export.WritePDF(writer, v.scene()); err != nil {
		log.Printf("SaveToFile: %v", err)
		dialog.ShowError(err, v.window)
		return
	}
	v.status.SetText(fmt.Sprintf("Exported %s", writer.URI().Name()))
}
