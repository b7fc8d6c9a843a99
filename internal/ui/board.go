package ui

import (
	"fmt"

	"TacBoard/internal/config"
	"TacBoard/internal/state"
	"TacBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// View wires the board state to the window. Every handler calls exactly one
// state update and then refreshes the objects that depend on it.
type View struct {
	cfg        *config.Config
	window     fyne.Window
	board      *state.Board
	surface    *surface.Surface
	drawing    *BoardWidget
	background *canvas.Image
	markers    *MarkerLayer
	toolbar    *Toolbar
	picker     *ImagePicker
	status     *widget.Label
	content    fyne.CanvasObject
}

// NewView mounts a board. The drawing surface takes the configured window
// size and keeps it for the lifetime of the view.
func NewView(cfg *config.Config, w fyne.Window) *View {
	s := surface.New(cfg.Window.Width, cfg.Window.Height)
	v := &View{
		cfg:     cfg,
		window:  w,
		surface: s,
		board:   state.NewBoard(s),
		status:  widget.NewLabel("Ready"),
	}

	v.background = &canvas.Image{FillMode: canvas.ImageFillContain}
	v.background.Hide()

	v.drawing = NewBoardWidget(v.board, s)
	v.drawing.OnStrokeEnd = v.updateStatus
	v.markers = NewMarkerLayer(v.board)
	v.toolbar = NewToolbar(v)
	v.picker = NewImagePicker(v.showImage)

	layers := container.NewStack(v.background, v.drawing, v.markers.Object())
	top := container.NewVBox(v.toolbar.Object(), v.picker.Object())
	v.content = container.NewBorder(top, nil, nil, nil, layers)
	v.updateStatus()
	return v
}

func (v *View) Content() fyne.CanvasObject { return v.content }

func (v *View) Board() *state.Board { return v.board }

func (v *View) toggleColor(c state.DrawColor) {
	v.board.ToggleColor(c)
	v.toolbar.SetActive(v.board.Color())
	v.updateStatus()
}

func (v *View) clearCanvas() {
	v.board.ClearCanvas()
	v.drawing.Refresh()
	v.updateStatus()
}

func (v *View) showImage(m state.MapImage) {
	v.board.ShowImage(m)
	v.background.Image = nil
	v.background.File = v.cfg.MapPath(m.File())
	v.background.Show()
	v.background.Refresh()
	v.updateStatus()
}

func (v *View) updateStatus() {
	v.status.SetText(fmt.Sprintf("Tool: %s | Map: %s | Strokes: %d",
		v.board.Color(), v.board.Background().Title(), len(v.board.Strokes())))
}
