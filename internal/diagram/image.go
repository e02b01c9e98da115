package diagram

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var supportedFormats = map[string]bool{
	".png": true,
	".svg": true,
	".pdf": true,
}

func checkFormat(filename string) error {
	ext := filepath.Ext(filename)
	if !supportedFormats[ext] {
		return fmt.Errorf("unsupported image format %q (use png, svg or pdf)", ext)
	}
	return nil
}

// rectPath returns the closed outline of an origin-centered rectangle
// with the given half-extents, in mm.
func rectPath(halfX, halfY float64) plotter.XYs {
	return plotter.XYs{
		{X: -halfX, Y: halfY},
		{X: halfX, Y: halfY},
		{X: halfX, Y: -halfY},
		{X: -halfX, Y: -halfY},
		{X: -halfX, Y: halfY},
	}
}

// ExportSpiral renders the rectangular spiral winding of one coil
// layer to an image file. It replays the same nesting geometry the
// engine used: each turn is the outer rectangle offset inward by one
// pitch per turn, with a connector stepping to the next turn at the
// bottom-left corner.
func ExportSpiral(data BoardData, filename string) error {
	if err := checkFormat(filename); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Magnetorquer winding — %d turns/layer", data.TurnsPerLayer)
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"

	// Board outline
	outline := rectPath(data.OuterWidth/2, data.OuterLength/2)
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Keepout
	keepout := rectPath(data.InnerWidth/2, data.InnerLength/2)
	keepoutLine, err := plotter.NewLine(keepout)
	if err != nil {
		return err
	}
	keepoutLine.LineStyle.Width = vg.Points(1)
	keepoutLine.LineStyle.Color = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	keepoutLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(keepoutLine)

	spiral, err := plotter.NewLine(SpiralPath(data))
	if err != nil {
		return err
	}
	spiral.LineStyle.Width = vg.Points(1.5)
	spiral.LineStyle.Color = color.RGBA{R: 184, G: 115, B: 51, A: 255}
	p.Add(spiral)

	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}

// SpiralPath generates the continuous polyline of one layer's winding,
// centered on the board origin, in mm.
func SpiralPath(data BoardData) plotter.XYs {
	pitch := data.Pitch()
	var pts plotter.XYs

	for n := 0; n < data.TurnsPerLayer; n++ {
		offset := float64(n) * pitch
		halfX := data.OuterWidth/2 - offset
		halfY := data.OuterLength/2 - offset

		// Clockwise from top-left, ending short of the start so the
		// connector can step inward to the next turn.
		pts = append(pts,
			plotter.XY{X: -halfX, Y: halfY},
			plotter.XY{X: halfX, Y: halfY},
			plotter.XY{X: halfX, Y: -halfY},
			plotter.XY{X: -halfX + pitch, Y: -halfY},
			plotter.XY{X: -halfX + pitch, Y: halfY - pitch},
		)
	}
	return pts
}

// ExportSweep renders the moment-vs-width sweep curve to an image
// file. Widths are in mm.
func ExportSweep(widthsMM, moments []float64, filename string) error {
	if err := checkFormat(filename); err != nil {
		return err
	}
	if len(widthsMM) != len(moments) {
		return fmt.Errorf("sweep data length mismatch: %d widths, %d moments", len(widthsMM), len(moments))
	}

	p := plot.New()
	p.Title.Text = "Magnetic moment vs trace width"
	p.X.Label.Text = "Trace width (mm)"
	p.Y.Label.Text = "Magnetic moment (A·m²)"

	pts := make(plotter.XYs, len(widthsMM))
	for i := range widthsMM {
		pts[i] = plotter.XY{X: widthsMM[i], Y: moments[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 80, B: 200, A: 255}
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p.Save(8*vg.Inch, 5*vg.Inch, filename)
}
