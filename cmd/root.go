package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lundeen06/magtorq-designer/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "magtorq",
	Short: "PCB Magnetorquer Design Tool",
	Long: `magtorq - PCB Magnetorquer Designer

A CLI tool for designing printed-circuit-board magnetorquer coils for
spacecraft attitude control.

Given board dimensions, manufacturing limits and electrical/thermal
budgets, it finds the trace width that maximizes magnetic dipole
moment while respecting current, power, current-density and thermal
constraints, and emits a structured design record for downstream
layout and rendering tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  magtorq v%s — PCB Magnetorquer Designer\n", version.Version)
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    design    optimize trace width from a constraints file")
		fmt.Println("    evaluate  analyze one fixed trace width")
		fmt.Println("    sweep     chart magnetic moment across the width range")
		fmt.Println("    layout    render the spiral winding from a design record")
		fmt.Println()
		fmt.Println("  Use 'magtorq --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
