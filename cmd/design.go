package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lundeen06/magtorq-designer/internal/coil"
	"github.com/lundeen06/magtorq-designer/internal/config"
	"github.com/lundeen06/magtorq-designer/internal/diagram"
)

var (
	designConfigFile string
	designOutputFile string
	designAsJSON     bool
	designShowBoard  bool
	designPlotFile   string
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Optimize trace width from a constraints file",
	Long: `Search the manufacturing trace-width range for the design that
maximizes magnetic dipole moment while respecting the current, power,
current-density and thermal budgets in the constraints file.

On success the design record is written as JSON for downstream layout
and rendering tools.

Examples:
  # Optimize and print a report
  magtorq design --config constraints.json

  # Write the design record next to the constraints
  magtorq design -c constraints.json -o design.json

  # Print the record JSON instead of the report
  magtorq design -c constraints.json --json`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().StringVarP(&designConfigFile, "config", "c", "", "Path to constraints JSON file [required]")
	designCmd.Flags().StringVarP(&designOutputFile, "output", "o", "", "Write the design record JSON to this file")
	designCmd.Flags().BoolVar(&designAsJSON, "json", false, "Print the design record JSON instead of the report")
	designCmd.Flags().BoolVar(&designShowBoard, "diagram", false, "Show an ASCII plan view of the board")
	designCmd.Flags().StringVar(&designPlotFile, "plot", "", "Export the spiral winding drawing (png, svg, pdf)")

	designCmd.MarkFlagRequired("config")
}

func runDesign(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(designConfigFile)
	if err != nil {
		return err
	}

	designer := coil.NewDesigner(cfg)
	best, err := designer.Optimize()
	if err != nil {
		return err
	}

	rec, err := designer.BuildRecord(best.TraceWidth)
	if err != nil {
		return err
	}

	if designAsJSON {
		if err := printRecord(rec); err != nil {
			return err
		}
	} else {
		printDesignReport(cfg, best)
	}

	if designShowBoard && best.Feasible() {
		fmt.Println(diagram.DrawASCIIBoard(boardData(rec)))
	}
	if designPlotFile != "" && best.Feasible() {
		if err := diagram.ExportSpiral(boardData(rec), designPlotFile); err != nil {
			return err
		}
		fmt.Printf("Winding drawing written to %s\n", designPlotFile)
	}

	if designOutputFile != "" {
		if err := writeRecord(rec, designOutputFile); err != nil {
			return err
		}
		fmt.Printf("Design record written to %s\n", designOutputFile)
	}
	return nil
}

func printRecord(rec *coil.Record) error {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding design record: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func writeRecord(rec *coil.Record, path string) error {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding design record: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing design record: %w", err)
	}
	return nil
}
