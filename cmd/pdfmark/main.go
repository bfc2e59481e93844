// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfmark CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfmark CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfmark",
	Short: "Page-marked text extraction from PDF documents",
	Long: `pdfmark extracts plain text from PDF files, one marker per page, so that
downstream tooling can address content by page number. It also generates the
synthetic lease-agreement PDFs used as test inputs.

Each operation is a subcommand: extract produces a page-marked transcript,
fixtures builds the sample documents, and info validates a PDF and reports
its page count.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfmark.yaml or ~/.config/pdfmark/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfmark")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfmark"))
		}
	}

	viper.SetEnvPrefix("PDFMARK")
	viper.AutomaticEnv()

	viper.SetDefault("fixtures.dir", "fixtures")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
