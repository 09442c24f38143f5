package main

import (
	"github.com/spf13/cobra"

	"github.com/mathieu/cv-analyzer/internal/config"
	"github.com/mathieu/cv-analyzer/internal/logger"
	"github.com/mathieu/cv-analyzer/internal/server"
)

var (
	servePort   int
	serveConfig string
	serveDebug  bool
	serveJSON   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that accepts CV uploads, analyzes them against job postings and exports PDF reports.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVarP(&serveDebug, "debug", "d", false, "Verbose/debug output")
	serveCmd.Flags().BoolVarP(&serveJSON, "json", "j", false, "JSON format for logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDebug {
		cfg.Debug = true
	}
	if serveJSON {
		cfg.JSONLogs = true
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(cfg, log)
	if err != nil {
		return err
	}

	return srv.Start()
}
