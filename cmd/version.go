package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lundeen06/magtorq-designer/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of magtorq",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("magtorq v%s\n", version.Version)
		fmt.Println("PCB Magnetorquer Design Tool")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
