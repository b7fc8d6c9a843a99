package ui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"TacBoard/internal/config"
	"TacBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) *View {
	t.Helper()
	a := test.NewTempApp(t)
	cfg := config.Default()
	cfg.Window.Width = 320
	cfg.Window.Height = 240
	cfg.Media.Dir = t.TempDir()

	w := a.NewWindow("board")
	v := NewView(cfg, w)
	w.SetContent(v.Content())
	w.Resize(fyne.NewSize(900, 600))
	return v
}

func primary(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestView_SurfaceSizedFromConfig(t *testing.T) {
	v := newTestView(t)
	w, h := v.surface.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestView_SwatchToggles(t *testing.T) {
	v := newTestView(t)
	amber := v.toolbar.swatches[state.ColorAmber]

	test.Tap(amber)
	assert.Equal(t, state.ColorAmber, v.board.Color())
	assert.True(t, amber.active())
	assert.False(t, v.toolbar.swatches[state.ColorCyan].active())
	assert.Contains(t, v.status.Text, "Tool: amber")

	test.Tap(amber)
	assert.Equal(t, state.ColorNone, v.board.Color())
	assert.False(t, amber.active())
}

func TestView_EraserButton(t *testing.T) {
	v := newTestView(t)
	test.Tap(v.toolbar.swatches[state.ColorCyan])
	test.Tap(v.toolbar.eraser)
	assert.Equal(t, state.ColorEraser, v.board.Color())
	assert.Equal(t, state.EraserWidth, v.board.Style().Width)
	assert.False(t, v.toolbar.swatches[state.ColorCyan].active())

	test.Tap(v.toolbar.swatches[state.ColorCyan])
	assert.Equal(t, state.PenWidth, v.board.Style().Width)
	assert.Equal(t, state.SourceOver, v.board.Style().Mode)
}

func TestView_DrawStroke(t *testing.T) {
	v := newTestView(t)
	test.Tap(v.toolbar.swatches[state.ColorAmber])

	v.drawing.MouseDown(primary(10, 10))
	v.drawing.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 50)}})
	v.drawing.MouseUp(primary(50, 50))

	assert.False(t, v.board.Drawing())
	assert.GreaterOrEqual(t, v.surface.Image().NRGBAAt(30, 30).A, uint8(250))
	assert.Contains(t, v.status.Text, "Strokes: 1")
}

func TestView_DrawingDisabledWithoutColor(t *testing.T) {
	v := newTestView(t)
	v.drawing.MouseDown(primary(10, 10))
	v.drawing.MouseMoved(primary(50, 50))
	v.drawing.MouseUp(primary(50, 50))
	assert.Zero(t, v.surface.Image().NRGBAAt(30, 30).A)
	assert.Empty(t, v.board.Strokes())
}

func TestView_SecondaryButtonDoesNotDraw(t *testing.T) {
	v := newTestView(t)
	test.Tap(v.toolbar.swatches[state.ColorAmber])
	ev := primary(10, 10)
	ev.Button = desktop.MouseButtonSecondary
	v.drawing.MouseDown(ev)
	assert.False(t, v.board.Drawing())
}

func TestView_MouseOutEndsStroke(t *testing.T) {
	v := newTestView(t)
	test.Tap(v.toolbar.swatches[state.ColorCyan])
	v.drawing.MouseDown(primary(10, 10))
	v.drawing.MouseMoved(primary(20, 10))
	v.drawing.MouseOut()
	assert.False(t, v.board.Drawing())

	v.drawing.MouseIn(primary(40, 10))
	v.drawing.MouseMoved(primary(60, 10))
	assert.Zero(t, v.surface.Image().NRGBAAt(55, 10).A)
}

func TestView_ClearButton(t *testing.T) {
	v := newTestView(t)
	test.Tap(v.toolbar.swatches[state.ColorAmber])
	v.drawing.MouseDown(primary(10, 10))
	v.drawing.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(80, 80)}})
	v.drawing.DragEnd()

	test.Tap(v.toolbar.clear)
	for _, px := range v.surface.Image().Pix {
		require.Zero(t, px)
	}
	assert.Contains(t, v.status.Text, "Strokes: 0")
}

func TestView_ImagePicker(t *testing.T) {
	v := newTestView(t)
	assert.False(t, v.background.Visible())
	for _, m := range state.Maps {
		test.Tap(v.picker.buttons[m])
		assert.Equal(t, m, v.board.Background())
	}
	assert.True(t, v.background.Visible())
	assert.Equal(t, filepath.Join(v.cfg.Media.Dir, "nuke1.png"), v.background.File)
	assert.Contains(t, v.status.Text, "Map: Nuke")
}

func TestView_DragMarker(t *testing.T) {
	v := newTestView(t)
	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(v.markers.Object())
	chip := v.markers.chips[state.Coba]
	assert.Equal(t, fyne.NewPos(50, 50), chip.Position())

	down := primary(0, 0)
	down.AbsolutePosition = origin.Add(fyne.NewPos(60, 60))
	chip.MouseDown(down)
	chip.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{AbsolutePosition: origin.Add(fyne.NewPos(110, 140))}})

	assert.Equal(t, state.Point{X: 100, Y: 130}, v.board.Position(state.Coba))
	assert.Equal(t, fyne.NewPos(100, 130), chip.Position())
	assert.Equal(t, fyne.NewPos(150, 50), v.markers.chips[state.Novicz].Position())

	chip.DragEnd()
	_, dragging := v.board.DragTarget()
	assert.False(t, dragging)

	v.markers.move(origin.Add(fyne.NewPos(300, 300)))
	assert.Equal(t, fyne.NewPos(100, 130), chip.Position())
}

type memoryWriter struct {
	bytes.Buffer
	uri    fyne.URI
	closed bool
}

func (m *memoryWriter) URI() fyne.URI { return m.uri }
func (m *memoryWriter) Close() error {
	m.closed = true
	return nil
}

func TestView_SaveToFile(t *testing.T) {
	v := newTestView(t)
	test.Tap(v.toolbar.swatches[state.ColorAmber])
	v.drawing.MouseDown(primary(10, 10))
	v.drawing.MouseMoved(primary(60, 40))
	v.drawing.MouseUp(primary(60, 40))
	test.Tap(v.picker.buttons[state.MapInferno])

	out := &memoryWriter{uri: storage.NewFileURI(filepath.Join(t.TempDir(), "board.pdf"))}
	v.SaveToFile(out)

	assert.True(t, out.closed)
	assert.True(t, strings.HasPrefix(out.String(), "%PDF-"))
	assert.Equal(t, "Exported board.pdf", v.status.Text)
}
