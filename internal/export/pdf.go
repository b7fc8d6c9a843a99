package export

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"
)

const boardImage = "board"

// WritePDF renders the scene and writes a landscape A4 document to out: the
// snapshot on the first page and, if any strokes were drawn, a stroke list
// on the second.
func WritePDF(out io.Writer, sc Scene) error {
	var buf bytes.Buffer
	img := Render(sc)
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle(sc.Title, true)
	p.SetCreator("TacBoard", true)
	p.AddPage()
	p.SetFont("Helvetica", "B", 14)
	p.CellFormat(0, 8, sc.Title, "", 1, "L", false, 0, "")
	p.SetFont("Helvetica", "", 9)
	p.CellFormat(0, 5, "Map: "+sc.Map.Title(), "", 1, "L", false, 0, "")

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(boardImage, opts, &buf)

	pageW, pageH := p.GetPageSize()
	left, _, right, bottom := p.GetMargins()
	top := p.GetY() + 2
	availW, availH := pageW-left-right, pageH-top-bottom
	b := img.Bounds()
	w, h := availW, availW*float64(b.Dy())/float64(b.Dx())
	if h > availH {
		w, h = availH*float64(b.Dx())/float64(b.Dy()), availH
	}
	p.ImageOptions(boardImage, left, top, w, h, false, opts, 0, "")

	if len(sc.Strokes) > 0 {
		writeStrokePage(p, sc)
	}

	if err := p.Output(out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("[EXPORT] Wrote snapshot of %s with %d strokes", sc.Map.Title(), len(sc.Strokes))
	return nil
}

func writeStrokePage(p *gofpdf.Fpdf, sc Scene) {
	p.AddPage()
	p.SetFont("Helvetica", "B", 12)
	p.CellFormat(0, 7, fmt.Sprintf("Strokes: %d", len(sc.Strokes)), "", 1, "L", false, 0, "")
	p.Ln(2)

	p.SetFont("Courier", "", 8)
	for i, st := range sc.Strokes {
		first, last := st.Points[0], st.Points[len(st.Points)-1]
		line := fmt.Sprintf("%3d  %-6s  %4d pts  (%.0f, %.0f) -> (%.0f, %.0f)  %s",
			i+1, st.Tool, len(st.Points), first.X, first.Y, last.X, last.Y,
			st.Time.Format("2006-01-02 15:04:05"))
		p.CellFormat(0, 4, line, "", 1, "L", false, 0, "")
	}
}
