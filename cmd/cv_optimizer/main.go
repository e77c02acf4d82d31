// Package main provides the entry point for the CV Optimizer HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_optimizer",
	Short: "CV Optimizer HTTP API Server",
	Long:  "CV Optimizer scores resumes against job descriptions, flags keyword gaps and ATS-unfriendly formatting, and serves the results via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
