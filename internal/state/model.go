package state

import (
	"image/color"
)

type Point struct{ X, Y float32 }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Compositing decides whether a stroke paints over or erases existing pixels.
type Compositing int

const (
	SourceOver     Compositing = iota // normal painting
	DestinationOut                    // eraser
)

func (c Compositing) String() string {
	if c == DestinationOut {
		return "destination-out"
	}
	return "source-over"
}

const (
	PenWidth    float32 = 5
	EraserWidth float32 = 50
)

// StrokeStyle is the configuration a stroke is painted with. Strokes always
// use round caps, so there is no cap field.
type StrokeStyle struct {
	Color color.NRGBA
	Width float32
	Mode  Compositing
}

// DefaultStyle is what the surface is configured with at mount time.
var DefaultStyle = StrokeStyle{
	Color: color.NRGBA{A: 0xff},
	Width: PenWidth,
	Mode:  SourceOver,
}

// DrawColor is the toolbar selection.
type DrawColor int

const (
	ColorNone DrawColor = iota
	ColorAmber
	ColorCyan
	ColorEraser
)

var drawColorHex = map[DrawColor]string{
	ColorAmber: "#FFAA17",
	ColorCyan:  "#0BBBD9",
}

func (c DrawColor) String() string {
	switch c {
	case ColorAmber:
		return "amber"
	case ColorCyan:
		return "cyan"
	case ColorEraser:
		return "eraser"
	}
	return "none"
}

// Hex returns the CSS style hex code, or "" for the eraser and none.
func (c DrawColor) Hex() string { return drawColorHex[c] }

var drawColorRGBA = map[DrawColor]color.NRGBA{
	ColorAmber: MustParseHex(drawColorHex[ColorAmber]),
	ColorCyan:  MustParseHex(drawColorHex[ColorCyan]),
}

// RGBA returns the paint color. The eraser and none have no paint color.
func (c DrawColor) RGBA() (color.NRGBA, bool) {
	paint, ok := drawColorRGBA[c]
	return paint, ok
}

// Apply derives the style that selecting c produces from the previous style.
// The eraser keeps the previous stroke color.
func (c DrawColor) Apply(prev StrokeStyle) StrokeStyle {
	if c == ColorEraser {
		prev.Mode = DestinationOut
		prev.Width = EraserWidth
		return prev
	}
	paint, ok := c.RGBA()
	if !ok {
		return prev
	}
	return StrokeStyle{Color: paint, Width: PenWidth, Mode: SourceOver}
}

// MustParseHex parses "#RRGGBB". It panics on malformed input and is only
// used for the fixed tables in this package.
func MustParseHex(s string) color.NRGBA {
	if len(s) != 7 || s[0] != '#' {
		panic("state: bad hex color " + s)
	}
	var v [3]uint8
	for i := range v {
		hi, lo := unhex(s[1+2*i]), unhex(s[2+2*i])
		if hi < 0 || lo < 0 {
			panic("state: bad hex color " + s)
		}
		v[i] = uint8(hi<<4 | lo)
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xff}
}

func unhex(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// MapImage is one of the bundled map backgrounds.
type MapImage int

const (
	MapNone MapImage = iota
	MapDust2
	MapMirage
	MapInferno
	MapOverpass
	MapNuke
)

// Maps lists the pickable maps in picker order.
var Maps = []MapImage{MapDust2, MapMirage, MapInferno, MapOverpass, MapNuke}

var mapInfo = map[MapImage]struct{ title, file string }{
	MapDust2:    {"Dust II", "dust2.png"},
	MapMirage:   {"Mirage", "mirage.png"},
	MapInferno:  {"Inferno", "inferno.png"},
	MapOverpass: {"Overpass", "overpass.png"},
	MapNuke:     {"Nuke", "nuke1.png"},
}

func (m MapImage) Title() string {
	if m == MapNone {
		return "none"
	}
	return mapInfo[m].title
}

// File is the asset file name inside the media directory.
func (m MapImage) File() string { return mapInfo[m].file }

// Marker is one of the five fixed board entities.
type Marker int

const (
	Coba Marker = iota
	Novicz
	Nexus
	Zedolost
	Corrality
	markerCount
)

type markerSpec struct {
	name  string
	label string
	color color.NRGBA
	start Point
}

// Resolved once; rendering code only reads from here.
var markerTable = [markerCount]markerSpec{
	Coba:      {"coba", "Coba", MustParseHex("#4FD924"), Point{X: 50, Y: 50}},
	Novicz:    {"novicz", "Novicz", MustParseHex("#FF7D0A"), Point{X: 150, Y: 50}},
	Nexus:     {"nexus", "Nexus", MustParseHex("#AE18D6"), Point{X: 250, Y: 50}},
	Zedolost:  {"zedolost", "Zedolost", MustParseHex("#09BFDE"), Point{X: 350, Y: 50}},
	Corrality: {"corrality", "Corrality", MustParseHex("#FFC106"), Point{X: 450, Y: 50}},
}

// Markers returns every marker in display order.
func Markers() []Marker {
	out := make([]Marker, markerCount)
	for i := range out {
		out[i] = Marker(i)
	}
	return out
}

func (m Marker) Name() string { return markerTable[m].name }
func (m Marker) Label() string { return markerTable[m].label }
func (m Marker) Color() color.NRGBA { return markerTable[m].color }
func (m Marker) InitialPosition() Point { return markerTable[m].start }
func (m Marker) String() string { return m.Name() }
