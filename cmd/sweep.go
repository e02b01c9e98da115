package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/lundeen06/magtorq-designer/internal/coil"
	"github.com/lundeen06/magtorq-designer/internal/config"
	"github.com/lundeen06/magtorq-designer/internal/diagram"
)

var (
	sweepConfigFile string
	sweepSamples    int
	sweepOutputFile string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Chart magnetic moment across the trace-width range",
	Long: `Evaluate the magnetic moment over the full manufacturing trace-width
range and chart it. Infeasible widths chart as zero, which makes
feasibility plateaus and turn-count steps visible.

Examples:
  # Terminal chart with 200 samples
  magtorq sweep --config constraints.json

  # Export the curve as an image
  magtorq sweep -c constraints.json -o sweep.png`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVarP(&sweepConfigFile, "config", "c", "", "Path to constraints JSON file [required]")
	sweepCmd.Flags().IntVarP(&sweepSamples, "samples", "n", 200, "Number of widths to sample")
	sweepCmd.Flags().StringVarP(&sweepOutputFile, "output", "o", "", "Export the sweep curve (png, svg, pdf)")

	sweepCmd.MarkFlagRequired("config")
}

func runSweep(cmd *cobra.Command, args []string) error {
	if sweepSamples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", sweepSamples)
	}

	cfg, err := config.Load(sweepConfigFile)
	if err != nil {
		return err
	}
	designer := coil.NewDesigner(cfg)

	m := cfg.Manufacturing
	widths := make([]float64, sweepSamples)
	floats.Span(widths, m.MinTraceWidth, m.MaxTraceWidth)

	widthsMM := make([]float64, len(widths))
	moments := make([]float64, len(widths))
	for i, w := range widths {
		cand, err := designer.Evaluate(w)
		if err != nil {
			return err
		}
		widthsMM[i] = w * 1e3
		moments[i] = cand.MagneticMoment
	}

	fmt.Println()
	fmt.Println(diagram.SweepChart(widthsMM, moments))
	fmt.Println()

	if sweepOutputFile != "" {
		if err := diagram.ExportSweep(widthsMM, moments, sweepOutputFile); err != nil {
			return err
		}
		fmt.Printf("Sweep curve written to %s\n", sweepOutputFile)
	}
	return nil
}
