// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pdiddy/briefcase/internal/history"
	"github.com/pdiddy/briefcase/internal/search"
	"github.com/pdiddy/briefcase/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP search API",
	Long: `Serve starts the HTTP API: POST /search, GET /sources,
GET /cases/:source/:caseId, and GET /health.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err == nil {
			fmt.Fprintln(os.Stderr, "Loaded environment from .env")
		}

		cfg := loadConfig()
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.Server.Port = port
		}

		svc := search.NewDefaultService(cfg)

		hist, err := history.NewStore(cfg.History)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
			hist = nil
		} else {
			defer hist.Close()
		}

		fmt.Fprintf(os.Stderr, "Listening on :%d\n", cfg.Server.Port)
		return server.New(svc, hist).Run(cfg.Server.Port)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (default from config, 3001)")

	rootCmd.AddCommand(serveCmd)
}
