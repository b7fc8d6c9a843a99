// Package surface implements the raster the board draws on.
package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"TacBoard/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Surface is a fixed-size NRGBA raster. Segments are stroked one at a time
// so every pointer move becomes visible immediately.
type Surface struct {
	img   *image.NRGBA
	style state.StrokeStyle
	last  state.Point
	open  bool
}

var _ state.Surface = (*Surface)(nil)

// New returns a transparent surface configured with the default style.
func New(width, height int) *Surface {
	return &Surface{
		img:   image.NewNRGBA(image.Rect(0, 0, width, height)),
		style: state.DefaultStyle,
	}
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the live raster. Callers must not keep it across strokes if
// they need a stable copy; use Snapshot for that.
func (s *Surface) Image() *image.NRGBA { return s.img }

func (s *Surface) Snapshot() *image.NRGBA {
	cp := image.NewNRGBA(s.img.Bounds())
	copy(cp.Pix, s.img.Pix)
	return cp
}

func (s *Surface) Style() state.StrokeStyle { return s.style }

// Begin starts a new path at p. Nothing is painted until the first LineTo.
func (s *Surface) Begin(p state.Point, style state.StrokeStyle) {
	s.style = style
	s.last = p
	s.open = true
}

// LineTo paints the segment from the previous point to p.
func (s *Surface) LineTo(p state.Point) {
	if !s.open {
		return
	}
	s.paintSegment(s.last, p)
	s.last = p
}

func (s *Surface) Close() { s.open = false }

// Clear makes every pixel fully transparent.
func (s *Surface) Clear() {
	for i := range s.img.Pix {
		s.img.Pix[i] = 0
	}
}

func (s *Surface) paintSegment(a, b state.Point) {
	mask, at := strokeMask(a, b, s.style.Width, s.img.Bounds())
	if mask == nil {
		return
	}
	area := mask.Bounds().Add(at)
	switch s.style.Mode {
	case state.DestinationOut:
		s.erase(mask, at)
	default:
		draw.DrawMask(s.img, area, image.NewUniform(s.style.Color), image.Point{}, mask, image.Point{}, draw.Over)
	}
}

// erase scales the alpha of every pixel under the mask by 1-coverage.
func (s *Surface) erase(mask *image.Alpha, at image.Point) {
	mb := mask.Bounds()
	for y := mb.Min.Y; y < mb.Max.Y; y++ {
		for x := mb.Min.X; x < mb.Max.X; x++ {
			cov := uint32(mask.AlphaAt(x, y).A)
			if cov == 0 {
				continue
			}
			i := s.img.PixOffset(x+at.X, y+at.Y)
			s.img.Pix[i+3] = uint8(uint32(s.img.Pix[i+3]) * (255 - cov) / 255)
		}
	}
}

// strokeMask rasterizes a round-capped segment into a coverage mask that
// covers only the segment's bounding box, clipped to bounds. The returned
// point is where the mask's origin sits on the surface.
func strokeMask(a, b state.Point, width float32, bounds image.Rectangle) (*image.Alpha, image.Point) {
	half := float64(width)/2 + 1
	box := image.Rect(
		int(math.Floor(math.Min(float64(a.X), float64(b.X))-half)),
		int(math.Floor(math.Min(float64(a.Y), float64(b.Y))-half)),
		int(math.Ceil(math.Max(float64(a.X), float64(b.X))+half)),
		int(math.Ceil(math.Max(float64(a.Y), float64(b.Y))+half)),
	).Intersect(bounds)
	if box.Empty() {
		return nil, image.Point{}
	}

	w, h := box.Dx(), box.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, mask, mask.Bounds())
	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetStroke(toFixed(width), fixed.I(4), rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round)
	stroker.SetColor(color.Opaque)

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	stroker.Start(rasterx.ToFixedP(float64(a.X)-ox, float64(a.Y)-oy))
	stroker.Line(rasterx.ToFixedP(float64(b.X)-ox, float64(b.Y)-oy))
	stroker.Stop(false)
	stroker.Draw()
	return mask, box.Min
}

func toFixed(v float32) fixed.Int26_6 { return fixed.Int26_6(math.Round(float64(v) * 64)) }
