package state

import (
	"log"
	"time"
)

// Surface is the raster the board composites strokes onto.
type Surface interface {
	Begin(p Point, style StrokeStyle)
	LineTo(p Point)
	Close()
	Clear()
}

type drag struct {
	marker Marker
	anchor Point // pointer offset from the marker position at grab time
}

// Board owns all UI state of the tactical board. Every method handles one
// kind of input event; all of them run on the UI goroutine, so there is no
// locking. Inputs that do not apply to the current state are ignored.
type Board struct {
	surface    Surface
	color      DrawColor
	style      StrokeStyle
	background MapImage
	positions  [markerCount]Point
	drag       *drag
	stroke     *Stroke
	strokes    []Stroke
	now        func() time.Time
}

// NewBoard mounts a board on surface. The surface is expected to start out
// transparent and configured with DefaultStyle.
func NewBoard(surface Surface) *Board {
	b := &Board{
		surface: surface,
		style:   DefaultStyle,
		now:     time.Now,
	}
	for _, m := range Markers() {
		b.positions[m] = m.InitialPosition()
	}
	return b
}

// ToggleColor selects c, or deselects it when it is already active. The
// new style only applies to strokes started afterwards.
func (b *Board) ToggleColor(c DrawColor) {
	if c == b.color {
		b.color = ColorNone
		log.Printf("[BOARD] %s deselected, drawing disabled", c)
		return
	}
	b.color = c
	b.style = c.Apply(b.style)
	log.Printf("[BOARD] %s selected (%s, width %.0f)", c, b.style.Mode, b.style.Width)
}

// ClearCanvas wipes every pixel of the surface and forgets the stroke history.
func (b *Board) ClearCanvas() {
	b.surface.Clear()
	log.Printf("[BOARD] Canvas cleared, %d strokes dropped", len(b.strokes))
	b.strokes = nil
}

func (b *Board) ShowImage(m MapImage) {
	b.background = m
	log.Printf("[BOARD] Background set to %s", m.Title())
}

// BeginStroke starts a path at p, unless drawing is disabled.
func (b *Board) BeginStroke(p Point) {
	if b.color == ColorNone {
		return
	}
	b.stroke = newStroke(b.color, b.style, p, b.now())
	b.surface.Begin(p, b.style)
}

// ExtendStroke paints the segment from the last point to p and reports
// whether anything was painted.
func (b *Board) ExtendStroke(p Point) bool {
	if b.stroke == nil || b.stroke.last() == p {
		return false
	}
	b.stroke.Points = append(b.stroke.Points, p)
	b.surface.LineTo(p)
	return true
}

// EndStroke finishes the stroke in progress. Pointer-up and pointer-leave
// both end up here.
func (b *Board) EndStroke() {
	if b.stroke == nil {
		return
	}
	b.surface.Close()
	b.strokes = append(b.strokes, *b.stroke)
	log.Printf("[BOARD] Stroke %s finished: %s, %d points", b.stroke.ID, b.stroke.Tool, len(b.stroke.Points))
	b.stroke = nil
}

// GrabMarker makes m the drag target. p is the pointer position in the
// marker container's coordinates.
func (b *Board) GrabMarker(m Marker, p Point) {
	if m < 0 || m >= markerCount {
		return
	}
	b.drag = &drag{marker: m, anchor: p.Sub(b.positions[m])}
}

// MovePointer repositions the dragged marker so that it keeps its offset
// from the pointer. It returns the moved marker, if any.
func (b *Board) MovePointer(p Point) (Marker, bool) {
	if b.drag == nil {
		return 0, false
	}
	b.positions[b.drag.marker] = p.Sub(b.drag.anchor)
	return b.drag.marker, true
}

// ReleasePointer ends any drag, wherever the pointer is.
func (b *Board) ReleasePointer() {
	if b.drag != nil {
		pos := b.positions[b.drag.marker]
		log.Printf("[BOARD] Marker %s dropped at (%.0f, %.0f)", b.drag.marker, pos.X, pos.Y)
	}
	b.drag = nil
}

func (b *Board) Color() DrawColor { return b.color }
func (b *Board) Style() StrokeStyle { return b.style }
func (b *Board) Background() MapImage { return b.background }
func (b *Board) Position(m Marker) Point { return b.positions[m] }

// Drawing reports whether a stroke is in progress.
func (b *Board) Drawing() bool { return b.stroke != nil }

// DragTarget returns the marker being dragged, if any.
func (b *Board) DragTarget() (Marker, bool) {
	if b.drag == nil {
		return 0, false
	}
	return b.drag.marker, true
}

// Strokes returns the strokes completed since the last clear.
func (b *Board) Strokes() []Stroke {
	out := make([]Stroke, len(b.strokes))
	copy(out, b.strokes)
	return out
}
