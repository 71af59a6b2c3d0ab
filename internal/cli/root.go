package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "canoex",
	Short: "Export Canoe capital-activity data to a tabular file",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(orgsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
