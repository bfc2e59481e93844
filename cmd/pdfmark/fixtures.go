package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfmark/internal/fixtures"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Generate the sample lease-agreement PDFs",
	Long: `Fixtures writes two synthetic PDF documents with fixed literal content:
a 3-page aircraft operating lease and a 1-page amendment. Both are verified
after generation and listed in a manifest.yaml next to the output files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = viper.GetString("fixtures.dir")
		}

		_, err := fixtures.Generate(dir, cmd.OutOrStdout())
		return err
	},
}

func init() {
	fixturesCmd.Flags().String("dir", "", `output directory (default "fixtures")`)

	rootCmd.AddCommand(fixturesCmd)
}
