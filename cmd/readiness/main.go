// Package main provides the entry point for the placement readiness CLI
// and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Placement readiness analyzer",
	Long:  "Analyze a pasted job description into a preparation plan, round-wise checklist, likely questions, and a readiness score that tracks your per-skill confidence.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
}
