package ui

import (
	"image/color"

	"TacBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    state.DrawColor
	OnTapped func(state.DrawColor)
	border   *canvas.Rectangle
}

func newColorSwatch(c state.DrawColor, tapped func(state.DrawColor)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.border = canvas.NewRectangle(color.Transparent)
	s.styleBorder(false)
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	paint, _ := s.Color.RGBA()
	rect := canvas.NewRectangle(paint)
	rect.SetMinSize(fyne.NewSize(32, 32))
	return widget.NewSimpleRenderer(container.NewStack(rect, s.border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func (s *colorSwatch) SetActive(active bool) {
	s.styleBorder(active)
	s.border.Refresh()
}

func (s *colorSwatch) active() bool { return s.border.StrokeWidth > 1 }

func (s *colorSwatch) styleBorder(active bool) {
	if active {
		s.border.StrokeColor = color.Black
		s.border.StrokeWidth = 3
	} else {
		s.border.StrokeColor = color.Gray{Y: 150}
		s.border.StrokeWidth = 1
	}
}

// Toolbar holds the tool buttons, the caption box and the status line.
type Toolbar struct {
	swatches map[state.DrawColor]*colorSwatch
	eraser   *widget.Button
	clear    *widget.Button
	export   *widget.Button
	caption  *widget.Entry
	object   fyne.CanvasObject
}

func NewToolbar(v *View) *Toolbar {
	t := &Toolbar{swatches: make(map[state.DrawColor]*colorSwatch)}

	colorBox := container.NewHBox()
	for _, c := range []state.DrawColor{state.ColorAmber, state.ColorCyan} {
		sw := newColorSwatch(c, v.toggleColor)
		t.swatches[c] = sw
		colorBox.Add(sw)
	}

	t.eraser = widget.NewButtonWithIcon("Erase", theme.ContentRemoveIcon(), func() {
		v.toggleColor(state.ColorEraser)
	})
	t.clear = widget.NewButtonWithIcon("New", theme.DeleteIcon(), v.clearCanvas)
	t.clear.Importance = widget.HighImportance
	t.export = widget.NewButtonWithIcon("Export PDF", theme.DocumentSaveIcon(), v.exportPDF)

	// Free-text caption; never read back.
	t.caption = widget.NewMultiLineEntry()
	t.caption.SetPlaceHolder("Type here...")
	t.caption.SetMinRowsVisible(2)
	captionBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(220, 60)), t.caption)

	t.object = container.NewHBox(
		colorBox,
		t.eraser,
		t.clear,
		widget.NewSeparator(),
		captionBox,
		layout.NewSpacer(),
		v.status,
		t.export,
	)
	return t
}

func (t *Toolbar) Object() fyne.CanvasObject { return t.object }

// SetActive highlights the control for the active tool.
func (t *Toolbar) SetActive(active state.DrawColor) {
	for c, sw := range t.swatches {
		sw.SetActive(c == active)
	}
	if active == state.ColorEraser {
		t.eraser.Importance = widget.WarningImportance
	} else {
		t.eraser.Importance = widget.MediumImportance
	}
	t.eraser.Refresh()
}

// ImagePicker has one button per bundled map.
type ImagePicker struct {
	buttons map[state.MapImage]*widget.Button
	object  fyne.CanvasObject
}

func NewImagePicker(onPick func(state.MapImage)) *ImagePicker {
	p := &ImagePicker{buttons: make(map[state.MapImage]*widget.Button)}
	row := container.NewHBox()
	for _, m := range state.Maps {
		btn := widget.NewButton(m.Title(), func() { onPick(m) })
		p.buttons[m] = btn
		row.Add(btn)
	}
	p.object = row
	return p
}

func (p *ImagePicker) Object() fyne.CanvasObject { return p.object }
