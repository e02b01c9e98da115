package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lundeen06/magtorq-designer/internal/coil"
	"github.com/lundeen06/magtorq-designer/internal/config"
	"github.com/lundeen06/magtorq-designer/internal/diagram"
)

// printDesignReport writes the human-readable design report for an
// evaluated candidate, companion to the JSON record which carries the
// same numbers for machine consumers.
func printDesignReport(cfg *config.Config, c *coil.Candidate) {
	d := cfg.Design

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PCB MAGNETORQUER DESIGN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("BOARD:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Outer envelope:\t%.1f x %.1f mm\n", d.OuterLength*1e3, d.OuterWidth*1e3)
	fmt.Fprintf(w, "  Inner keepout:\t%.1f x %.1f mm\n", d.InnerLength*1e3, d.InnerWidth*1e3)
	fmt.Fprintf(w, "  Layers:\t%d (%d coil + 1 interconnect)\n", d.NumLayers, cfg.CoilLayers())
	fmt.Fprintf(w, "  Copper weight:\t%.1f oz (%.1f µm)\n", d.CopperWeight, cfg.CopperThickness()*1e6)
	w.Flush()
	fmt.Println()

	fmt.Println("WINDING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Trace width:\t%.3f mm\n", c.TraceWidth*1e3)
	fmt.Fprintf(w, "  Trace spacing:\t%.3f mm\n", cfg.Manufacturing.MinTraceSpacing*1e3)
	fmt.Fprintf(w, "  Turns per layer:\t%d\n", c.TurnsPerLayer)
	fmt.Fprintf(w, "  Total trace length:\t%.1f m\n", c.TotalLength)
	w.Flush()
	fmt.Println()

	fmt.Println("ELECTRICAL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Resistance:\t%.2f Ω\n", c.Resistance)
	fmt.Fprintf(w, "  Voltage:\t%.2f V\n", d.Voltage)
	fmt.Fprintf(w, "  Current:\t%.3f A\n", c.Current)
	fmt.Fprintf(w, "  Power:\t%.2f W (budget %.2f W)\n", c.Power, d.MaxPower)
	fmt.Fprintf(w, "  Current density:\t%.2f A/mm² (limit %.2f)\n",
		c.CurrentDensity/1e6, cfg.Physical.CurrentDensityLimit/1e6)
	w.Flush()
	fmt.Println()

	fmt.Println("THERMAL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Space (radiative):\t%.1f °C ambient + %.1f °C rise = %.1f °C\n",
		c.Thermal.Space.Ambient, c.Thermal.Space.Rise, c.Thermal.Space.Final)
	if c.Thermal.Ground != nil {
		fmt.Fprintf(w, "  Ground test:\t%.1f °C ambient + %.1f °C rise = %.1f °C\n",
			c.Thermal.Ground.Ambient, c.Thermal.Ground.Rise, c.Thermal.Ground.Final)
	}
	fmt.Fprintf(w, "  Operating limit:\t%.1f °C\n", d.OperatingTemp)
	w.Flush()
	fmt.Println()

	fmt.Println("DYNAMICS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Inductance:\t%.3f µH\n", c.Inductance*1e6)
	fmt.Fprintf(w, "  Time constant:\t%.3f ms\n", c.TimeConstant*1e3)
	fmt.Fprintf(w, "  Time to 99%% moment:\t%.3f ms\n", c.TimeTo99Percent*1e3)
	w.Flush()
	fmt.Println()

	fmt.Println("PERFORMANCE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if c.Feasible() {
		fmt.Printf("  ╔═════════════════════════════════════════════╗\n")
		fmt.Printf("  ║  MAGNETIC MOMENT = %.4f A·m²              \n", c.MagneticMoment)
		fmt.Printf("  ╚═════════════════════════════════════════════╝\n")
	} else {
		fmt.Println("  ╔═════════════════════════════════════════════╗")
		fmt.Println("  ║  DESIGN NOT FEASIBLE                        ║")
		fmt.Println("  ╚═════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  Reason: %s\n", c.Verdict.Reason())
	}
	fmt.Println()
}

// boardData converts a design record to the shape the diagram package
// consumes.
func boardData(rec *coil.Record) diagram.BoardData {
	return diagram.BoardData{
		OuterLength:   rec.Dimensions.Outer.Length,
		OuterWidth:    rec.Dimensions.Outer.Width,
		InnerLength:   rec.Dimensions.Inner.Length,
		InnerWidth:    rec.Dimensions.Inner.Width,
		TraceWidth:    rec.Traces.Width,
		TraceSpacing:  rec.Traces.Spacing,
		TurnsPerLayer: rec.Traces.TurnsPerLayer,
		TotalLayers:   rec.Traces.TotalLayers,
	}
}
