package main

import (
	"context"

	"github.com/jonathan/placement-readiness/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing the analysis pipeline, history, and test-checklist gate as REST endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	port := servePort
	if port == 0 {
		port = app.cfg.Port
	}

	srv, err := server.New(server.Options{
		Port:           port,
		Store:          app.store,
		Gate:           app.gate,
		PassphraseHash: app.cfg.PassphraseHash,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
