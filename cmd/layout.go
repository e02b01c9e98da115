package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lundeen06/magtorq-designer/internal/coil"
	"github.com/lundeen06/magtorq-designer/internal/diagram"
)

var (
	layoutRecordFile string
	layoutOutputFile string
	layoutShowASCII  bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Render the spiral winding from a design record",
	Long: `Read a design record produced by 'magtorq design' and render the
rectangular spiral winding of one coil layer. This replays the same
nesting geometry the optimizer used, so the drawing matches the copper
the layout script will place.

Examples:
  magtorq layout --record design.json --output winding.png`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().StringVarP(&layoutRecordFile, "record", "r", "", "Path to design record JSON [required]")
	layoutCmd.Flags().StringVarP(&layoutOutputFile, "output", "o", "winding.png", "Output image file (png, svg, pdf)")
	layoutCmd.Flags().BoolVar(&layoutShowASCII, "diagram", false, "Also show the ASCII plan view")

	layoutCmd.MarkFlagRequired("record")
}

func runLayout(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(layoutRecordFile)
	if err != nil {
		return fmt.Errorf("reading design record %s: %w", layoutRecordFile, err)
	}

	var rec coil.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return fmt.Errorf("parsing design record %s: %w", layoutRecordFile, err)
	}
	if rec.Traces.TurnsPerLayer <= 0 {
		return fmt.Errorf("design record %s holds no feasible design (0 turns)", layoutRecordFile)
	}

	data := boardData(&rec)
	if layoutShowASCII {
		fmt.Println(diagram.DrawASCIIBoard(data))
	}

	if err := diagram.ExportSpiral(data, layoutOutputFile); err != nil {
		return err
	}
	fmt.Printf("Winding drawing written to %s\n", layoutOutputFile)
	return nil
}
