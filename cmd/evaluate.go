package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lundeen06/magtorq-designer/internal/coil"
	"github.com/lundeen06/magtorq-designer/internal/config"
)

var (
	evalConfigFile string
	evalWidthMM    float64
	evalAsJSON     bool
	evalOutputFile string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Analyze one fixed trace width",
	Long: `Run the geometric, electrical and thermal models for a single trace
width without optimizing. Useful for checking a width a fabricator has
already quoted, or for inspecting why a width is infeasible.

Examples:
  # Evaluate a 0.45 mm trace
  magtorq evaluate --config constraints.json --width 0.45`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVarP(&evalConfigFile, "config", "c", "", "Path to constraints JSON file [required]")
	evaluateCmd.Flags().Float64VarP(&evalWidthMM, "width", "w", 0, "Trace width to evaluate (mm) [required]")
	evaluateCmd.Flags().BoolVar(&evalAsJSON, "json", false, "Print the design record JSON instead of the report")
	evaluateCmd.Flags().StringVarP(&evalOutputFile, "output", "o", "", "Write the design record JSON to this file")

	evaluateCmd.MarkFlagRequired("config")
	evaluateCmd.MarkFlagRequired("width")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	if evalWidthMM <= 0 {
		return fmt.Errorf("trace width must be positive, got %g mm", evalWidthMM)
	}

	cfg, err := config.Load(evalConfigFile)
	if err != nil {
		return err
	}

	designer := coil.NewDesigner(cfg)
	cand, err := designer.Evaluate(evalWidthMM / 1e3)
	if err != nil {
		return err
	}

	if evalAsJSON || evalOutputFile != "" {
		rec, err := designer.BuildRecord(cand.TraceWidth)
		if err != nil {
			return err
		}
		if evalAsJSON {
			if err := printRecord(rec); err != nil {
				return err
			}
		}
		if evalOutputFile != "" {
			if err := writeRecord(rec, evalOutputFile); err != nil {
				return err
			}
			fmt.Printf("Design record written to %s\n", evalOutputFile)
		}
	}
	if !evalAsJSON {
		printDesignReport(cfg, cand)
	}
	return nil
}
