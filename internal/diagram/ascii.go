package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// BoardData holds everything the diagrams need about a finished
// design. Dimensions are in millimeters.
type BoardData struct {
	OuterLength float64 // mm
	OuterWidth  float64 // mm
	InnerLength float64 // mm
	InnerWidth  float64 // mm

	TraceWidth   float64 // mm
	TraceSpacing float64 // mm

	TurnsPerLayer int
	TotalLayers   int
}

// Pitch returns the turn pitch in mm.
func (b BoardData) Pitch() float64 {
	return b.TraceWidth + b.TraceSpacing
}

// DrawASCIIBoard creates an ASCII plan view of the board: outer edge,
// winding band and inner keepout, annotated with the trace layout.
func DrawASCIIBoard(data BoardData) string {
	var sb strings.Builder

	widthChars := 40
	heightChars := 18

	// Proportion of each axis occupied by the keepout
	keepoutW := int(float64(widthChars) * data.InnerWidth / data.OuterWidth)
	keepoutH := int(float64(heightChars) * data.InnerLength / data.OuterLength)
	if keepoutW < 2 {
		keepoutW = 2
	}
	if keepoutH < 1 {
		keepoutH = 1
	}

	koLeft := (widthChars - keepoutW) / 2
	koTop := (heightChars - keepoutH) / 2

	sb.WriteString("  ┌" + strings.Repeat("─", widthChars) + "┐\n")
	for row := 0; row < heightChars; row++ {
		sb.WriteString("  │")
		for col := 0; col < widthChars; col++ {
			inKeepout := row >= koTop && row < koTop+keepoutH &&
				col >= koLeft && col < koLeft+keepoutW
			if inKeepout {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteString("│\n")
	}
	sb.WriteString("  └" + strings.Repeat("─", widthChars) + "┘\n")

	sb.WriteString(fmt.Sprintf("  Board:   %.1f x %.1f mm, keepout %.1f x %.1f mm\n",
		data.OuterWidth, data.OuterLength, data.InnerWidth, data.InnerLength))
	sb.WriteString(fmt.Sprintf("  Winding: %d turns/layer x %d coil layers, %.3f mm trace / %.3f mm gap\n",
		data.TurnsPerLayer, data.TotalLayers-1, data.TraceWidth, data.TraceSpacing))
	sb.WriteString("  (# = winding band, blank = keepout)\n")

	return sb.String()
}

// SweepChart renders the magnetic moment across the sampled
// trace-width range as a terminal chart. Infeasible widths show as
// zero, so feasibility plateaus and turn-count steps are visible at a
// glance.
func SweepChart(widthsMM, moments []float64) string {
	if len(moments) == 0 {
		return ""
	}
	caption := fmt.Sprintf("magnetic moment (A·m²) vs trace width %.3f–%.3f mm",
		widthsMM[0], widthsMM[len(widthsMM)-1])
	return asciigraph.Plot(moments,
		asciigraph.Height(14),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	)
}
