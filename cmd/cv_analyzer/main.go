// Package main provides the entry point for the CV analyzer CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_analyzer",
	Short: "CV / job-posting compatibility analyzer",
	Long:  "cv_analyzer scores how well a CV matches a job posting by comparing extracted keywords and technical skills, and renders a report with improvement suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
