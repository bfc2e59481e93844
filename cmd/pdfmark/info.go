package main

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.pdf>",
	Short: "Validate a PDF and report its page count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if err := api.ValidateFile(path, nil); err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		n, err := api.PageCountFile(path)
		if err != nil {
			return fmt.Errorf("counting pages in %s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d pages, valid PDF\n", path, n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
