package surface

import (
	"image/color"
	"testing"

	"TacBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var amber = state.MustParseHex("#FFAA17")

func penStyle() state.StrokeStyle {
	return state.ColorAmber.Apply(state.DefaultStyle)
}

func assertPainted(t *testing.T, s *Surface, x, y int, want color.NRGBA) {
	t.Helper()
	got := s.Image().NRGBAAt(x, y)
	assert.GreaterOrEqual(t, got.A, uint8(250), "pixel (%d,%d) should be opaque", x, y)
	assert.InDelta(t, want.R, got.R, 2)
	assert.InDelta(t, want.G, got.G, 2)
	assert.InDelta(t, want.B, got.B, 2)
}

func TestNew_Transparent(t *testing.T) {
	s := New(64, 48)
	w, h := s.Size()
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)
	for _, v := range s.Image().Pix {
		require.Zero(t, v)
	}
	assert.Equal(t, state.DefaultStyle, s.Style())
}

func TestLineTo_PaintsDiagonal(t *testing.T) {
	s := New(100, 100)
	s.Begin(state.Point{X: 10, Y: 10}, penStyle())
	s.LineTo(state.Point{X: 50, Y: 50})
	s.Close()

	assertPainted(t, s, 30, 30, amber)
	assertPainted(t, s, 12, 12, amber)
	assertPainted(t, s, 48, 48, amber)
	assert.Zero(t, s.Image().NRGBAAt(10, 40).A)
	assert.Zero(t, s.Image().NRGBAAt(70, 70).A)
}

func TestLineTo_WithoutBeginIsIgnored(t *testing.T) {
	s := New(32, 32)
	s.LineTo(state.Point{X: 20, Y: 20})
	for _, v := range s.Image().Pix {
		require.Zero(t, v)
	}
}

func TestLineTo_AfterCloseIsIgnored(t *testing.T) {
	s := New(32, 32)
	s.Begin(state.Point{X: 2, Y: 2}, penStyle())
	s.Close()
	s.LineTo(state.Point{X: 20, Y: 20})
	assert.Zero(t, s.Image().NRGBAAt(10, 10).A)
}

func TestErase_RemovesPixels(t *testing.T) {
	s := New(100, 100)
	s.Begin(state.Point{X: 10, Y: 50}, penStyle())
	s.LineTo(state.Point{X: 90, Y: 50})
	s.Close()
	assertPainted(t, s, 50, 50, amber)

	s.Begin(state.Point{X: 50, Y: 10}, state.ColorEraser.Apply(penStyle()))
	s.LineTo(state.Point{X: 50, Y: 90})
	s.Close()

	assert.LessOrEqual(t, s.Image().NRGBAAt(50, 50).A, uint8(5))
	// Outside the eraser's 50px band the pen stroke survives.
	assertPainted(t, s, 15, 50, amber)
	assertPainted(t, s, 85, 50, amber)
}

func TestClear_AlwaysTransparent(t *testing.T) {
	s := New(60, 60)
	s.Begin(state.Point{X: 5, Y: 5}, penStyle())
	s.LineTo(state.Point{X: 55, Y: 55})
	s.Close()
	s.Clear()
	for _, v := range s.Image().Pix {
		require.Zero(t, v)
	}
}

func TestSegmentOutsideBounds(t *testing.T) {
	s := New(20, 20)
	s.Begin(state.Point{X: 200, Y: 200}, penStyle())
	s.LineTo(state.Point{X: 300, Y: 300})
	s.Close()
	for _, v := range s.Image().Pix {
		require.Zero(t, v)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := New(40, 40)
	s.Begin(state.Point{X: 5, Y: 20}, penStyle())
	s.LineTo(state.Point{X: 35, Y: 20})
	snap := s.Snapshot()
	s.Clear()
	assert.NotZero(t, snap.NRGBAAt(20, 20).A)
	assert.Zero(t, s.Image().NRGBAAt(20, 20).A)
}
