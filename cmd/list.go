package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/singlecell-tools/scfetch/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, e := range registry.All() {
			marker := ""
			if e.Name == registry.DefaultDataset {
				marker = " (default)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s%s\n", e.Name, e.Description, marker)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
