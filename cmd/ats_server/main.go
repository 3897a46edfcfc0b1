// Package main provides the entry point for the applicant tracking HTTP API
// server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_server",
	Short: "Applicant Tracking HTTP API Server",
	Long:  "Applicant Tracking Server manages candidate intake, per-job pipeline boards, interview evaluations, and the shared talent pool via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
