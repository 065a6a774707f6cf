package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DISIA-TECH/tool-content-backend/internal/config"
	"github.com/DISIA-TECH/tool-content-backend/internal/home"
	"github.com/DISIA-TECH/tool-content-backend/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the toolcontent server",
	Long: `Start the toolcontent HTTP server.

The server loads configuration from the config file, watches it for
changes, and reloads chat providers on the fly.

The server provides:
  - /blog/general-interest and /blog/success-case - Blog generation
  - /linkedin/post, /linkedin/styles, /linkedin/personas - LinkedIn generation
  - /blog/customization - Permanent prompt overrides
  - /generations - Generation call history
  - /export/html - HTML export of generated articles

Examples:
  toolcontent serve                  # Start on default port 8000
  toolcontent serve --port 3000      # Start on custom port
  toolcontent serve --host 0.0.0.0   # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Prefer the home config file when no explicit --config is given
		configPath := cfgFile
		if configPath == "" && h.ConfigExists() {
			configPath = h.ConfigPath()
		}

		cm, err := config.NewManager(configPath)
		if err != nil {
			return err
		}

		// Create server
		srv, err := server.New(server.Config{
			Host:          serveHost,
			Port:          servePort,
			Home:          h,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the home directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}
		if h.ConfigExists() {
			return nil
		}
		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		cmd.Println("wrote", h.ConfigPath())
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8000", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
}
