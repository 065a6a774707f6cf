package main

import (
	"github.com/spf13/cobra"

	"github.com/DISIA-TECH/tool-content-backend/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running toolcontent server via HTTP.

These commands require a running server (toolcontent serve).
Use --server to specify a custom server URL.

Examples:
  toolcontent api health                       # Check server health
  toolcontent api linkedin post "tema"         # Generate a LinkedIn post
  toolcontent api blog general "tema"          # Generate a blog article
  toolcontent api generations list             # List recent generation calls`,
}

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Blog article generation commands",
}

var linkedinCmd = &cobra.Command{
	Use:   "linkedin",
	Short: "LinkedIn post generation commands",
}

var generationsCmd = &cobra.Command{
	Use:   "generations",
	Short: "Generation call history commands",
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Article export commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8000", "Server URL",
	)

	// Health endpoints at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerUIEndpoint{}).Command(getServerURL))

	// Blog as subcommand group
	for _, ep := range endpoints.BlogCommands() {
		blogCmd.AddCommand(ep.Command(getServerURL))
	}

	// LinkedIn as subcommand group
	for _, ep := range endpoints.LinkedInCommands() {
		linkedinCmd.AddCommand(ep.Command(getServerURL))
	}

	// Generation history as subcommand group
	generationsCmd.AddCommand((&endpoints.ListGenerationsEndpoint{}).Command(getServerURL))

	// Export as subcommand group
	exportCmd.AddCommand((&endpoints.ExportHTMLEndpoint{}).Command(getServerURL))

	apiCmd.AddCommand(blogCmd)
	apiCmd.AddCommand(linkedinCmd)
	apiCmd.AddCommand(generationsCmd)
	apiCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(apiCmd)
}
