package main

import (
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes POST /analyze, POST /analyze/batch, GET /skills and GET /health.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := settings.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	srv := server.New(server.Config{
		Port:          port,
		MaxInputBytes: settings.MaxInputBytes,
		TopKeywords:   settings.TopKeywords,
		Concurrency:   settings.Concurrency,
	})
	return srv.Start()
}
