package ui

import (
	"TacBoard/internal/state"
	"TacBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows the drawing surface and turns pointer input on it into
// strokes. The raster keeps the surface's pixel size; it is not stretched
// when the window changes.
type BoardWidget struct {
	widget.BaseWidget
	board       *state.Board
	raster      *canvas.Image
	size        fyne.Size
	OnStrokeEnd func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(b *state.Board, s *surface.Surface) *BoardWidget {
	w, h := s.Size()
	raster := canvas.NewImageFromImage(s.Image())
	raster.ScaleMode = canvas.ImageScaleFastest
	bw := &BoardWidget{
		board:  b,
		raster: raster,
		size:   fyne.NewSize(float32(w), float32(h)),
	}
	bw.ExtendBaseWidget(bw)
	return bw
}

func toPoint(p fyne.Position) state.Point { return state.Point{X: p.X, Y: p.Y} }

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.board.BeginStroke(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(*desktop.MouseEvent) { b.endStroke() }

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) { b.extend(e.Position) }

// Leaving the surface ends the stroke; re-entering does not resume it.
func (b *BoardWidget) MouseOut() { b.endStroke() }

func (b *BoardWidget) Dragged(e *fyne.DragEvent) { b.extend(e.Position) }

func (b *BoardWidget) DragEnd() { b.endStroke() }

func (b *BoardWidget) extend(p fyne.Position) {
	if b.board.ExtendStroke(toPoint(p)) {
		b.raster.Refresh()
	}
}

func (b *BoardWidget) endStroke() {
	if !b.board.Drawing() {
		return
	}
	b.board.EndStroke()
	if b.OnStrokeEnd != nil {
		b.OnStrokeEnd()
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.raster}
}

func (r *boardWidgetRenderer) Layout(fyne.Size) {
	r.board.raster.Move(fyne.NewPos(0, 0))
	r.board.raster.Resize(r.board.size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
