package ui

import (
	"image/color"

	"TacBoard/internal/export"
	"TacBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const markerSize = 2 * export.MarkerRadius

// MarkerLayer holds the marker chips above the drawing. Pointer positions
// are converted to the layer's own coordinates before they reach the board,
// so chips follow the pointer wherever the layer sits in the window.
type MarkerLayer struct {
	board     *state.Board
	chips     map[state.Marker]*markerChip
	container *fyne.Container
}

func NewMarkerLayer(b *state.Board) *MarkerLayer {
	l := &MarkerLayer{
		board:     b,
		chips:     make(map[state.Marker]*markerChip),
		container: container.NewWithoutLayout(),
	}
	for _, m := range state.Markers() {
		chip := newMarkerChip(m, l)
		chip.Resize(fyne.NewSize(markerSize, markerSize))
		l.chips[m] = chip
		l.container.Add(chip)
		l.place(m)
	}
	return l
}

func (l *MarkerLayer) Object() fyne.CanvasObject { return l.container }

func (l *MarkerLayer) local(abs fyne.Position) state.Point {
	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(l.container)
	return toPoint(abs.Subtract(origin))
}

func (l *MarkerLayer) place(m state.Marker) {
	p := l.board.Position(m)
	l.chips[m].Move(fyne.NewPos(p.X, p.Y))
}

func (l *MarkerLayer) grab(m state.Marker, abs fyne.Position) {
	l.board.GrabMarker(m, l.local(abs))
}

func (l *MarkerLayer) move(abs fyne.Position) {
	if m, ok := l.board.MovePointer(l.local(abs)); ok {
		l.place(m)
	}
}

func (l *MarkerLayer) release() { l.board.ReleasePointer() }

type markerChip struct {
	widget.BaseWidget
	marker state.Marker
	layer  *MarkerLayer
}

var _ fyne.Draggable = (*markerChip)(nil)
var _ desktop.Mouseable = (*markerChip)(nil)

func newMarkerChip(m state.Marker, l *MarkerLayer) *markerChip {
	c := &markerChip{marker: m, layer: l}
	c.ExtendBaseWidget(c)
	return c
}

func (c *markerChip) CreateRenderer() fyne.WidgetRenderer {
	disc := canvas.NewCircle(c.marker.Color())
	label := canvas.NewText(c.marker.Label(), color.White)
	label.TextSize = 9
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Alignment = fyne.TextAlignCenter
	return widget.NewSimpleRenderer(container.NewStack(disc, container.NewCenter(label)))
}

func (c *markerChip) MinSize() fyne.Size { return fyne.NewSize(markerSize, markerSize) }

func (c *markerChip) MouseDown(e *desktop.MouseEvent) { c.layer.grab(c.marker, e.AbsolutePosition) }

func (c *markerChip) MouseUp(*desktop.MouseEvent) { c.layer.release() }

func (c *markerChip) Dragged(e *fyne.DragEvent) { c.layer.move(e.AbsolutePosition) }

func (c *markerChip) DragEnd() { c.layer.release() }
