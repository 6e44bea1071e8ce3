// Package main provides the entry point for the RankRite resume analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rankrite",
	Short: "Resume and job description matching toolkit",
	Long:  "RankRite scores plain-text resumes against job descriptions, ranks candidate batches, and suggests resume improvements.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
