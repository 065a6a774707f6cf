package main

import (
	"github.com/spf13/cobra"

	"github.com/DISIA-TECH/tool-content-backend/internal/api"
	"github.com/DISIA-TECH/tool-content-backend/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "toolcontent",
	Short: "Content generation backend for blog articles and LinkedIn posts",
	Long: `toolcontent generates Spanish-language marketing content with LLMs.

It composes system and user prompts from configurable template variants,
invokes the configured chat provider, and parses the response into
structured articles and posts:
  - General-interest blog articles with SEO metadata
  - Dual-version success-case articles from source material
  - LinkedIn posts in several styles, optionally as a named author persona`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.toolcontent/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "toolcontent home directory (default: ~/.toolcontent)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
