package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfmark/internal/pdfread"
	"github.com/pdiddy/pdfmark/internal/transcript"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract page-marked plain text from a PDF",
	Long: `Extract opens a PDF, pulls the text layer of every page in document
order, and emits a transcript with a "--- PAGE <n> ---" marker per page.
Pages without extractable text are rendered as "(empty page)" so page
numbering stays aligned with the source document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("output")

		doc, err := pdfread.Open(args[0])
		if err != nil {
			return err
		}
		defer doc.Close()

		text, err := transcript.Build(doc)
		if err != nil {
			return err
		}

		return transcript.Write(text, outPath, cmd.OutOrStdout())
	},
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "write transcript to file instead of stdout")

	rootCmd.AddCommand(extractCmd)
}
