// Package export flattens the board into a printable snapshot.
package export

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"TacBoard/internal/state"

	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// MarkerRadius matches the on-screen marker chips.
const MarkerRadius = 20

type Pin struct {
	Marker state.Marker
	Pos    state.Point // top-left corner of the chip
}

// Scene is everything visible on the board at export time.
type Scene struct {
	Title      string
	Map        state.MapImage
	Background image.Image // nil when no map is shown
	Drawing    *image.NRGBA
	Pins       []Pin
	Strokes    []state.Stroke
}

// LoadBackground decodes the map image at path. Failures are logged and
// produce a nil image so the export still works without a map.
func LoadBackground(path string) image.Image {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		log.Printf("[EXPORT] Skipping background: %v", err)
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("[EXPORT] Skipping background %s: %v", path, err)
		return nil
	}
	return img
}

// Render composites background, drawing and markers, in that order, onto a
// canvas the size of the drawing surface.
func Render(sc Scene) *image.NRGBA {
	bounds := sc.Drawing.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, image.White, image.Point{}, draw.Src)

	if sc.Background != nil {
		dst := fitRect(sc.Background.Bounds(), bounds)
		xdraw.ApproxBiLinear.Scale(out, dst, sc.Background, sc.Background.Bounds(), xdraw.Over, nil)
	}
	draw.Draw(out, bounds, sc.Drawing, bounds.Min, draw.Over)

	for _, p := range sc.Pins {
		drawPin(out, p)
	}
	return out
}

// fitRect returns the largest rectangle with src's aspect ratio centered
// inside dst.
func fitRect(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	if sw == 0 || sh == 0 {
		return image.Rectangle{}
	}
	w, h := dw, sh*dw/sw
	if h > dh {
		w, h = sw*dh/sh, dh
	}
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func drawPin(dst *image.NRGBA, p Pin) {
	b := dst.Bounds()
	cx := float64(p.Pos.X) + MarkerRadius
	cy := float64(p.Pos.Y) + MarkerRadius

	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	filler := rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
	filler.SetColor(p.Marker.Color())
	rasterx.AddCircle(cx, cy, MarkerRadius, filler)
	filler.Draw()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	label := p.Marker.Label()
	w := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(cx*64) - w/2,
		Y: fixed.I(int(cy) + 4),
	}
	d.DrawString(label)
}
