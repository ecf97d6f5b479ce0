package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/singlecell-tools/scfetch/internal/pipeline"
	"github.com/singlecell-tools/scfetch/internal/registry"
)

var fetchOutDir string

var fetchCmd = &cobra.Command{
	Use:   "fetch [dataset]",
	Short: "Fetch a named dataset and save it as an .h5ad container",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := registry.DefaultDataset
		if len(args) == 1 {
			name = args[0]
		}
		return runFetch(cmd, name)
	},
}

// runFetch resolves the dataset and runs the pipeline. Shared by the bare
// root invocation and the fetch subcommand.
func runFetch(cmd *cobra.Command, name string) error {
	e, err := registry.Lookup(name)
	if err != nil {
		return err
	}
	outDir := outputDir()
	_, err = pipeline.Run(cmd.Context(), cmd.OutOrStdout(), newFetchClient(), e, outDir)
	return err
}

func outputDir() string {
	if fetchOutDir != "" {
		return fetchOutDir
	}
	if cfg != nil && cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return filepath.Join("data", "raw")
}

func init() {
	fetchCmd.Flags().StringVar(&fetchOutDir, "out", "", "output directory (default from config, data/raw)")
	rootCmd.AddCommand(fetchCmd)
	// The bare root command shares the --out flag for the default fetch.
	rootCmd.Flags().StringVar(&fetchOutDir, "out", "", "output directory (default from config, data/raw)")
}
